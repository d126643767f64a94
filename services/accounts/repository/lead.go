package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

const leadColumns = `
	id, phone_number, full_name, birth_date, id_type, id_number,
	id_expiry_date, otp, otp_expiration, password_token,
	password_token_expiration, created
`

// CreateLead inserts a fresh pre-activation record.
func (r *AccountRepo) CreateLead(ctx context.Context, lead *models.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	lead.Created = time.Now().UTC()

	query := `
		INSERT INTO lead (
			id, phone_number, full_name, birth_date, id_type, id_number,
			id_expiry_date, otp, otp_expiration, password_token,
			password_token_expiration, created
		) VALUES (
			:id, :phone_number, :full_name, :birth_date, :id_type, :id_number,
			:id_expiry_date, :otp, :otp_expiration, :password_token,
			:password_token_expiration, :created
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, lead); err != nil {
		if isUniqueViolation(err) {
			return errs.ResourceExists("registration already in progress for this phone number")
		}
		return errs.Operation("failed to create lead", err)
	}
	return nil
}

// GetLeadByID retrieves a lead by id.
func (r *AccountRepo) GetLeadByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	return r.getLead(ctx, "id", id)
}

// GetLeadByPhone retrieves a lead by normalized phone number.
func (r *AccountRepo) GetLeadByPhone(ctx context.Context, phoneNumber string) (*models.Lead, error) {
	return r.getLead(ctx, "phone_number", phoneNumber)
}

// GetLeadByPasswordToken retrieves the lead holding the given continuation
// token. The token column carries a unique index.
func (r *AccountRepo) GetLeadByPasswordToken(ctx context.Context, token string) (*models.Lead, error) {
	return r.getLead(ctx, "password_token", token)
}

func (r *AccountRepo) getLead(ctx context.Context, field string, value interface{}) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM lead WHERE ` + field + ` = $1`

	var lead models.Lead
	err := r.db.GetContext(ctx, &lead, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFound("lead not found")
		}
		return nil, errs.Operation("failed to get lead", err)
	}
	return &lead, nil
}

// RotateLeadOTP stores a fresh registration OTP on the lead.
func (r *AccountRepo) RotateLeadOTP(ctx context.Context, id uuid.UUID, otp string, expiration time.Time) error {
	query := `
		UPDATE lead
		SET otp = $2, otp_expiration = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, otp, expiration)
	if err != nil {
		return errs.Operation("failed to rotate lead OTP", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.NotFound("lead not found")
	}
	return nil
}

// PromoteLeadOTP mints the continuation token after OTP verification. The
// write is conditioned on the OTP value the caller read, so a concurrent
// rotation makes the later transition fail instead of double-consuming.
func (r *AccountRepo) PromoteLeadOTP(ctx context.Context, id uuid.UUID, currentOTP, token string, expiration time.Time) error {
	query := `
		UPDATE lead
		SET password_token = $3, password_token_expiration = $4
		WHERE id = $1 AND otp = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, currentOTP, token, expiration)
	if err != nil {
		return errs.Operation("failed to promote lead OTP", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.BadRequest("lead state changed concurrently")
	}
	return nil
}

// UpdateLeadInformation writes the collected profile fields and the rotated
// continuation token, conditioned on the token presented for this step.
func (r *AccountRepo) UpdateLeadInformation(ctx context.Context, lead *models.Lead, currentToken string) error {
	query := `
		UPDATE lead
		SET full_name = $3, birth_date = $4, id_type = $5, id_number = $6,
			id_expiry_date = $7, password_token = $8,
			password_token_expiration = $9
		WHERE id = $1 AND password_token = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		lead.ID, currentToken,
		lead.FullName, lead.BirthDate, lead.IDType, lead.IDNumber,
		lead.IDExpiryDate, lead.PasswordToken, lead.PasswordTokenExpiration,
	)
	if err != nil {
		return errs.Operation("failed to update lead information", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.BadRequest("lead state changed concurrently")
	}
	return nil
}
