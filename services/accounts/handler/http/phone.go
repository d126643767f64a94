package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// RequestPhoneReset handles phone-change start requests: a verification
// token is sent to the currently registered number.
func (h *AccountHandler) RequestPhoneReset(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	resp, err := h.accountUC.ResetPhoneRequest(c.Request().Context(), userID)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ResetPhone handles phone staging requests: the current-phone token is
// verified and a fresh token goes out to the new number.
func (h *AccountHandler) ResetPhone(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	var req models.ResetPhoneRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.NewPhoneNumber == "" || req.Token == "" {
		return utils.ValidationResponse(c, "new_phone_number and token are required")
	}

	resp, err := h.accountUC.ResetPhone(c.Request().Context(), userID, req.NewPhoneNumber, req.Token)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdatePhone handles phone commit requests
func (h *AccountHandler) UpdatePhone(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	var req models.UpdatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}
	if req.Token == "" {
		return utils.ValidationResponse(c, "token is required")
	}

	if err := h.accountUC.UpdatePhone(c.Request().Context(), userID, req.Token); err != nil {
		return utils.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
