package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

func TestRequestPasswordReset_Success(t *testing.T) {
	uc, mockRepo, _, mockNotify := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByPhone(gomock.Any(), "0244000001").
		Return(&models.Customer{ID: customerID, PhoneNumber: "0244000001"}, nil)

	var storedToken string
	mockRepo.EXPECT().SetCustomerAuthToken(gomock.Any(), customerID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string, _ time.Time) error {
			storedToken = token
			return nil
		})

	var sentEvent *models.NotificationEvent
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.NotificationEvent) error {
			sentEvent = event
			return nil
		})

	resp, err := uc.RequestPasswordReset(context.Background(), "0244000001")

	require.NoError(t, err)
	assert.Equal(t, customerID.String(), resp.ID)
	assert.Len(t, storedToken, 6)
	require.NotNil(t, sentEvent)
	assert.Equal(t, storedToken, sentEvent.Details["token"])
	assert.Equal(t, []string{"0244000001"}, sentEvent.Recipients)
}

func TestResetPassword_Success(t *testing.T) {
	uc, mockRepo, mockIAM, mockNotify := newTestUC(t)

	customerID := uuid.New()
	token := "482913"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		PhoneNumber:         "0244000001",
		AuthServiceID:       "iam-user-1",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)
	mockIAM.EXPECT().ResetPassword(gomock.Any(), "iam-user-1", "9876").Return(nil)
	mockRepo.EXPECT().ConsumeCustomerAuthToken(gomock.Any(), customerID, token).Return(nil)
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ResetPassword(context.Background(), customerID.String(), token, "9876")

	assert.NoError(t, err)
}

func TestResetPassword_ConsumedToken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:            customerID,
		AuthServiceID: "iam-user-1",
		AuthToken:     nil,
	}, nil)

	err := uc.ResetPassword(context.Background(), customerID.String(), "482913", "9876")

	assert.True(t, errs.IsKind(err, errs.KindExpiredToken))
}

func TestResetPassword_WrongToken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	token := "482913"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		AuthServiceID:       "iam-user-1",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)

	err := uc.ResetPassword(context.Background(), customerID.String(), "000000", "9876")

	assert.True(t, errs.IsKind(err, errs.KindBadRequest))
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	token := "482913"
	exp := time.Now().Add(-time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		AuthServiceID:       "iam-user-1",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)

	err := uc.ResetPassword(context.Background(), customerID.String(), token, "9876")

	assert.True(t, errs.IsKind(err, errs.KindExpiredToken))
}

func TestResetPassword_FailureLeavesTokenIntact(t *testing.T) {
	uc, mockRepo, mockIAM, _ := newTestUC(t)

	customerID := uuid.New()
	token := "482913"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		AuthServiceID:       "iam-user-1",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)
	mockIAM.EXPECT().ResetPassword(gomock.Any(), "iam-user-1", "9876").
		Return(errs.IAM(502, "identity service unavailable"))
	// No ConsumeCustomerAuthToken expectation: the secret survives the failure.

	err := uc.ResetPassword(context.Background(), customerID.String(), token, "9876")

	assert.True(t, errs.IsKind(err, errs.KindIAM))
}

func TestChangePassword_VerifiesOldPIN(t *testing.T) {
	uc, mockRepo, mockIAM, mockNotify := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:            customerID,
		PhoneNumber:   "0244000001",
		AuthServiceID: "iam-user-1",
	}, nil)
	mockIAM.EXPECT().GetToken(gomock.Any(), customerID.String(), "1234").
		Return(&models.TokenPair{Access: "acc"}, nil)
	mockIAM.EXPECT().ResetPassword(gomock.Any(), "iam-user-1", "9876").Return(nil)
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ChangePassword(context.Background(), customerID.String(), "1234", "9876")

	assert.NoError(t, err)
}

func TestChangePassword_WrongOldPIN(t *testing.T) {
	uc, mockRepo, mockIAM, _ := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:            customerID,
		AuthServiceID: "iam-user-1",
	}, nil)
	mockIAM.EXPECT().GetToken(gomock.Any(), customerID.String(), "0000").
		Return(nil, errs.IAM(401, "invalid user credentials"))

	err := uc.ChangePassword(context.Background(), customerID.String(), "0000", "9876")

	// The IAM rejection surfaces unmodified.
	assert.True(t, errs.IsKind(err, errs.KindIAM))
}

func TestResetPinProcess_PromotesShortToken(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	shortToken := "4821"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                 customerID,
		FullName:           "Ama Mensah",
		OTPToken:           &shortToken,
		OTPTokenExpiration: &exp,
	}, nil)

	var promoted string
	mockRepo.EXPECT().PromoteCustomerOTPToken(gomock.Any(), customerID, shortToken, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, authToken string, _ time.Time) error {
			promoted = authToken
			return nil
		})

	resp, err := uc.ResetPinProcess(context.Background(), customerID.String(), shortToken)

	require.NoError(t, err)
	assert.Equal(t, "Ama Mensah", resp.FullName)
	assert.Len(t, promoted, 6)
	assert.Equal(t, promoted, resp.PasswordToken)
}

func TestResetPinProcess_ShortWildcardAccepted(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:       customerID,
		FullName: "Ama Mensah",
	}, nil)
	mockRepo.EXPECT().PromoteCustomerOTPToken(gomock.Any(), customerID, "", gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.ResetPinProcess(context.Background(), customerID.String(), "6666")

	assert.NoError(t, err)
}

func TestProcessResetPin_Success(t *testing.T) {
	uc, mockRepo, mockIAM, mockNotify := newTestUC(t)

	customerID := uuid.New()
	token := "591042"
	exp := time.Now().Add(3 * time.Minute)
	mockRepo.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&models.Customer{
		ID:                  customerID,
		PhoneNumber:         "0244000001",
		AuthServiceID:       "iam-user-1",
		AuthToken:           &token,
		AuthTokenExpiration: &exp,
	}, nil)
	mockIAM.EXPECT().ResetPassword(gomock.Any(), "iam-user-1", "5555").Return(nil)
	mockRepo.EXPECT().ConsumeCustomerAuthToken(gomock.Any(), customerID, token).Return(nil)
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ProcessResetPin(context.Background(), customerID.String(), token, "5555")

	assert.NoError(t, err)
}

func TestPinProcess_IssuesShortToken(t *testing.T) {
	uc, mockRepo, _, mockNotify := newTestUC(t)

	customerID := uuid.New()
	mockRepo.EXPECT().GetCustomerByPhone(gomock.Any(), "0244000001").
		Return(&models.Customer{ID: customerID, PhoneNumber: "0244000001"}, nil)

	var storedToken string
	mockRepo.EXPECT().SetCustomerOTPToken(gomock.Any(), customerID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string, _ time.Time) error {
			storedToken = token
			return nil
		})
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.PinProcess(context.Background(), "0244000001")

	require.NoError(t, err)
	assert.Equal(t, customerID.String(), resp.ID)
	assert.Len(t, storedToken, 4)
}
