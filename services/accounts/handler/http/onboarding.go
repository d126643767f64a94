package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// Register handles registration start requests
func (h *AccountHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.ValidationResponse(c, "phone_number is required")
	}

	resp, err := h.accountUC.Register(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("registration started",
		logger.String("lead_id", resp.ID),
	)
	return c.JSON(http.StatusCreated, resp)
}

// ConfirmToken handles registration OTP verification requests
func (h *AccountHandler) ConfirmToken(c echo.Context) error {
	var req models.ConfirmTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.ID == "" || req.Token == "" {
		return utils.ValidationResponse(c, "id and token are required")
	}

	resp, err := h.accountUC.ConfirmToken(c.Request().Context(), req.ID, req.Token)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AddInformation handles profile submission requests
func (h *AccountHandler) AddInformation(c echo.Context) error {
	var req models.CustomerInformationRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.ID == "" || req.ConformationToken == "" || req.FullName == "" {
		return utils.ValidationResponse(c, "id, conformation_token and full_name are required")
	}

	resp, err := h.accountUC.AddCustomerInformation(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AddPIN handles onboarding completion requests
func (h *AccountHandler) AddPIN(c echo.Context) error {
	var req models.AddPINRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.PasswordToken == "" || req.PIN == "" {
		return utils.ValidationResponse(c, "password_token and pin are required")
	}

	tokens, err := h.accountUC.AddPIN(c.Request().Context(), req.PasswordToken, req.PIN)
	if err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("account activated")
	return c.JSON(http.StatusOK, tokens)
}

// ResendToken handles OTP rotation requests
func (h *AccountHandler) ResendToken(c echo.Context) error {
	var req models.ResendTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.ID == "" {
		return utils.ValidationResponse(c, "id is required")
	}

	resp, err := h.accountUC.ResendToken(c.Request().Context(), req.ID)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
