package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/gasline/gasline/internal/pkg/models"
)

// AccountRepo implements persistence for leads, customers and login attempts
// on PostgreSQL.
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}
