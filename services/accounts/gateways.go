package accounts

import (
	"context"

	"github.com/gasline/gasline/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gasline/gasline/services/accounts IAMGateway,NotificationGW

// IAMGateway is the typed client over the external identity service. Every
// call returns on HTTP 2xx; any non-2xx surfaces as an IAMError carrying the
// upstream status code.
type IAMGateway interface {
	GetToken(ctx context.Context, username, password string) (*models.TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error)
	CreateUser(ctx context.Context, req *models.CreateIAMUserRequest) (*models.CreatedIAMUser, error)
	ResetPassword(ctx context.Context, userID, newPassword string) error
	UpdateUser(ctx context.Context, userID string, update *models.IAMUserUpdate) error
	DeleteUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, username string) (*models.IAMUser, error)
	ListGroups(ctx context.Context) ([]models.IAMGroup, error)
	AssignGroup(ctx context.Context, userID, group string) error
}

// NotificationGW publishes notification events to the message bus with
// at-least-once semantics.
type NotificationGW interface {
	PublishSMS(ctx context.Context, event *models.NotificationEvent) error
	PublishEmail(ctx context.Context, event *models.NotificationEvent) error
}
