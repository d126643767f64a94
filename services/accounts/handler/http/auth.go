package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// Login handles authentication requests
func (h *AccountHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.PhoneNumber == "" || req.PIN == "" {
		return utils.ValidationResponse(c, "phone_number and pin are required")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), req.PhoneNumber, req.PIN, c.RealIP())
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RefreshToken handles token refresh requests
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.Refresh == "" {
		return utils.ValidationResponse(c, "refresh is required")
	}

	tokens, err := h.accountUC.RefreshToken(c.Request().Context(), req.Refresh)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}
