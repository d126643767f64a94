package http

import (
	"github.com/gasline/gasline/services/accounts"
)

// AccountHandler handles HTTP requests for the account flows.
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}
