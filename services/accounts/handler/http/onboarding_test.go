package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/services/accounts/mocks"
)

func newHandlerTest(t *testing.T) (*AccountHandler, *mocks.MockAccountUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAccountUC(ctrl)
	return NewAccountHandler(mockUC), mockUC
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler_Created(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().Register(gomock.Any(), "0244000001").
		Return(&models.RegisterResponse{ID: "lead-1"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/account/register",
		`{"phone_number":"0244000001"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead-1")
}

func TestRegisterHandler_MissingPhone(t *testing.T) {
	h, _ := newHandlerTest(t)

	c, rec := newJSONContext(t, http.MethodPost, "/account/register", `{}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ValidationException")
}

func TestRegisterHandler_DuplicatePhone(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().Register(gomock.Any(), "0244000002").
		Return(nil, errs.ResourceExists("phone number already registered"))

	c, rec := newJSONContext(t, http.MethodPost, "/account/register",
		`{"phone_number":"0244000002"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ResourceExists")
}

func TestConfirmTokenHandler_Success(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().ConfirmToken(gomock.Any(), "lead-1", "123456").
		Return(&models.ConfirmTokenResponse{ConformationToken: "tok", ID: "lead-1"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/confirm-token",
		`{"id":"lead-1","token":"123456"}`)

	require.NoError(t, h.ConfirmToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "conformation_token")
}

func TestConfirmTokenHandler_WrongToken(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().ConfirmToken(gomock.Any(), "lead-1", "000000").
		Return(nil, errs.ExpiredToken("invalid or expired token"))

	c, rec := newJSONContext(t, http.MethodPost, "/confirm-token",
		`{"id":"lead-1","token":"000000"}`)

	require.NoError(t, h.ConfirmToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ExpiredToken")
}

func TestAddPINHandler_ReturnsTokenPair(t *testing.T) {
	h, mockUC := newHandlerTest(t)

	mockUC.EXPECT().AddPIN(gomock.Any(), "password-token", "1234").
		Return(&models.TokenPair{Access: "acc", Refresh: "ref"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/add-pin",
		`{"password_token":"password-token","pin":"1234"}`)

	require.NoError(t, h.AddPIN(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access":"acc"`)
}

func TestAddInformationHandler_MissingFields(t *testing.T) {
	h, _ := newHandlerTest(t)

	c, rec := newJSONContext(t, http.MethodPost, "/add-information",
		`{"id":"lead-1"}`)

	require.NoError(t, h.AddInformation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ValidationException")
}
