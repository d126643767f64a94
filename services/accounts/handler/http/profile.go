package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// GetAccount handles profile retrieval requests
func (h *AccountHandler) GetAccount(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return utils.BadRequestResponse(c, "customer_id is required")
	}

	customer, err := h.accountUC.GetAccount(c.Request().Context(), customerID)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// UpdateAccount handles profile patch requests
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return utils.BadRequestResponse(c, "customer_id is required")
	}

	var update models.CustomerUpdate
	if err := c.Bind(&update); err != nil {
		return utils.ValidationResponse(c, "invalid request payload")
	}

	customer, err := h.accountUC.UpdateAccount(c.Request().Context(), customerID, &update)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteAccount handles account deletion requests
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return utils.BadRequestResponse(c, "customer_id is required")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), customerID); err != nil {
		return utils.WriteError(c, err)
	}

	logger.Info("account deleted",
		logger.String("customer_id", customerID),
	)
	return c.NoContent(http.StatusNoContent)
}
