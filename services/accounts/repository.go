package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gasline/gasline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gasline/gasline/services/accounts AccountRepo

// AccountRepo is the persistence interface for leads, customers and login
// attempts. Secret-consuming writes take the previously read secret value
// and apply it as an optimistic check, so two concurrent transitions on the
// same row serialize: the later one fails against the rotated value.
type AccountRepo interface {
	// Leads
	CreateLead(ctx context.Context, lead *models.Lead) error
	GetLeadByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	GetLeadByPhone(ctx context.Context, phoneNumber string) (*models.Lead, error)
	GetLeadByPasswordToken(ctx context.Context, token string) (*models.Lead, error)
	RotateLeadOTP(ctx context.Context, id uuid.UUID, otp string, expiration time.Time) error
	PromoteLeadOTP(ctx context.Context, id uuid.UUID, currentOTP, token string, expiration time.Time) error
	UpdateLeadInformation(ctx context.Context, lead *models.Lead, currentToken string) error
	ConvertLeadToCustomer(ctx context.Context, customer *models.Customer, currentToken string) error

	// Customers
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetCustomerByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error)
	SetCustomerAuthToken(ctx context.Context, id uuid.UUID, token string, expiration time.Time) error
	ConsumeCustomerAuthToken(ctx context.Context, id uuid.UUID, currentToken string) error
	SetCustomerOTPToken(ctx context.Context, id uuid.UUID, token string, expiration time.Time) error
	PromoteCustomerOTPToken(ctx context.Context, id uuid.UUID, currentOTPToken, authToken string, expiration time.Time) error
	StageNewPhone(ctx context.Context, id uuid.UUID, newPhoneNumber, authToken string, expiration time.Time) error
	CommitNewPhone(ctx context.Context, id uuid.UUID) error
	UpdateCustomerProfile(ctx context.Context, id uuid.UUID, update *models.CustomerUpdate) (*models.Customer, error)
	DeleteCustomerAndLead(ctx context.Context, id uuid.UUID) error

	// Login attempts
	GetLoginAttempt(ctx context.Context, phoneNumber string) (*models.LoginAttempt, error)
	RecordFailedLogin(ctx context.Context, phoneNumber, requestIP string, maxAttempts int, lockout time.Duration) (*models.LoginAttempt, error)
	ResetLoginAttempts(ctx context.Context, phoneNumber string) error
}
