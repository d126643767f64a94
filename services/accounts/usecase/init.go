package usecase

import (
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/services/accounts"
)

// AccountUC drives the onboarding state machine and the credential
// recovery flows over the repository and the external gateways.
type AccountUC struct {
	accountRepo accounts.AccountRepo
	iamGW       accounts.IAMGateway
	notifyGW    accounts.NotificationGW
	cfg         *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo accounts.AccountRepo,
	iamGW accounts.IAMGateway,
	notifyGW accounts.NotificationGW,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		iamGW:       iamGW,
		notifyGW:    notifyGW,
		cfg:         cfg,
	}
}
