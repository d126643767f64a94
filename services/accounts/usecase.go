package accounts

import (
	"context"

	"github.com/gasline/gasline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gasline/gasline/services/accounts AccountUC

// AccountUC is the account usecase interface: the onboarding state machine,
// the credential recovery engine, login and profile management.
type AccountUC interface {
	// Onboarding state machine
	Register(ctx context.Context, phoneNumber string) (*models.RegisterResponse, error)
	ConfirmToken(ctx context.Context, id, token string) (*models.ConfirmTokenResponse, error)
	AddCustomerInformation(ctx context.Context, req *models.CustomerInformationRequest) (*models.PasswordTokenResponse, error)
	AddPIN(ctx context.Context, passwordToken, pin string) (*models.TokenPair, error)
	ResendToken(ctx context.Context, id string) (*models.RegisterResponse, error)

	// Authentication
	Login(ctx context.Context, phoneNumber, pin, requestIP string) (*models.LoginResponse, error)
	RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error)

	// Credential recovery
	RequestPasswordReset(ctx context.Context, phoneNumber string) (*models.RegisterResponse, error)
	ResetPassword(ctx context.Context, id, token, newPIN string) error
	ChangePassword(ctx context.Context, customerID, oldPIN, newPIN string) error
	PinProcess(ctx context.Context, phoneNumber string) (*models.RegisterResponse, error)
	ResetPinProcess(ctx context.Context, id, token string) (*models.ResetPinProcessResponse, error)
	ProcessResetPin(ctx context.Context, customerID, token, newPIN string) error

	// Phone-number change
	ResetPhoneRequest(ctx context.Context, customerID string) (*models.RegisterResponse, error)
	ResetPhone(ctx context.Context, customerID, newPhoneNumber, token string) (*models.RegisterResponse, error)
	UpdatePhone(ctx context.Context, customerID, token string) error

	// Profile management
	GetAccount(ctx context.Context, customerID string) (*models.Customer, error)
	UpdateAccount(ctx context.Context, customerID string, update *models.CustomerUpdate) (*models.Customer, error)
	DeleteAccount(ctx context.Context, customerID string) error
}
