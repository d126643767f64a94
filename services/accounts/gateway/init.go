package gateway

import (
	"time"

	httppkg "github.com/gasline/gasline/internal/pkg/http"
	"github.com/gasline/gasline/internal/pkg/models"
	nsqpkg "github.com/gasline/gasline/internal/pkg/nsq"
)

// AccountGW fronts the external collaborators of the account service: the
// identity service and the notification bus.
type AccountGW struct {
	cfg      *models.Config
	iam      *httppkg.Client
	producer *nsqpkg.Producer
}

// NewAccountGW creates a new account gateway instance
func NewAccountGW(cfg *models.Config, producer *nsqpkg.Producer) *AccountGW {
	timeout := time.Duration(cfg.IAM.TimeoutSec) * time.Second

	return &AccountGW{
		cfg:      cfg,
		iam:      httppkg.NewClient(cfg.IAM.BaseURL, timeout),
		producer: producer,
	}
}
