package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// ForgotPassword handles PIN-reset start requests
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.ValidationResponse(c, "phone_number is required")
	}

	resp, err := h.accountUC.RequestPasswordReset(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ResetPassword handles PIN-reset completion requests
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.ID == "" || req.Token == "" || req.NewPIN == "" {
		return utils.ValidationResponse(c, "id, token and new_pin are required")
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), req.ID, req.Token, req.NewPIN); err != nil {
		return utils.WriteError(c, err)
	}
	return c.NoContent(http.StatusResetContent)
}

// ChangePassword handles authenticated PIN change requests
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.OldPIN == "" || req.NewPIN == "" {
		return utils.ValidationResponse(c, "old_pin and new_pin are required")
	}

	if err := h.accountUC.ChangePassword(c.Request().Context(), userID, req.OldPIN, req.NewPIN); err != nil {
		return utils.WriteError(c, err)
	}
	return c.NoContent(http.StatusResetContent)
}

// RequestPinProcess handles alternate PIN-reset start requests
func (h *AccountHandler) RequestPinProcess(c echo.Context) error {
	var req models.PinProcessRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.ValidationResponse(c, "phone_number is required")
	}

	resp, err := h.accountUC.PinProcess(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RequestResetPin handles alternate PIN-reset verification requests
func (h *AccountHandler) RequestResetPin(c echo.Context) error {
	var req models.ResetPinProcessRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.ID == "" || req.Token == "" {
		return utils.ValidationResponse(c, "id and token are required")
	}

	resp, err := h.accountUC.ResetPinProcess(c.Request().Context(), req.ID, req.Token)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ResetPin handles alternate PIN-reset completion requests
func (h *AccountHandler) ResetPin(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	var req models.ProcessResetPinRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.Token == "" || req.NewPIN == "" {
		return utils.ValidationResponse(c, "token and new_pin are required")
	}

	if err := h.accountUC.ProcessResetPin(c.Request().Context(), userID, req.Token, req.NewPIN); err != nil {
		return utils.WriteError(c, err)
	}
	return c.NoContent(http.StatusOK)
}
