package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus_KindMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ExpiredToken("x").HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").HTTPStatus())
	assert.Equal(t, http.StatusForbidden, Forbidden("x").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFound("x").HTTPStatus())
	assert.Equal(t, http.StatusConflict, ResourceExists("x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Operation("x", nil).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal("x", nil).HTTPStatus())
}

func TestIAM_ForwardsUpstreamStatus(t *testing.T) {
	err := IAM(http.StatusUnauthorized, "invalid user credentials")
	assert.Equal(t, http.StatusUnauthorized, err.HTTPStatus())
	assert.Equal(t, KindIAM, err.Kind)
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	base := NotFound("customer not found")
	wrapped := fmt.Errorf("fetching profile: %w", base)

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindBadRequest))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Operation("publish failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "publish failed")
}
