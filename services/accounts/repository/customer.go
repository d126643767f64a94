package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

const customerColumns = `
	id, phone_number, full_name, email, birth_date, id_type, id_number,
	id_expiry_date, auth_service_id, status, auth_token,
	auth_token_expiration, otp_token, otp_token_expiration,
	new_phone_number, profile_image, created, modified
`

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// GetCustomerByID retrieves a customer by id.
func (r *AccountRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return r.getCustomer(ctx, "id", id)
}

// GetCustomerByPhone retrieves a customer by normalized phone number.
func (r *AccountRepo) GetCustomerByPhone(ctx context.Context, phoneNumber string) (*models.Customer, error) {
	return r.getCustomer(ctx, "phone_number", phoneNumber)
}

func (r *AccountRepo) getCustomer(ctx context.Context, field string, value interface{}) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + field + ` = $1`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFound("customer not found")
		}
		return nil, errs.Operation("failed to get customer", err)
	}
	return &customer, nil
}

// ConvertLeadToCustomer activates a lead: in one transaction the lead row is
// locked against the presented continuation token, the customer row is
// inserted with the lead's id, and the token is cleared so it cannot be
// consumed twice.
func (r *AccountRepo) ConvertLeadToCustomer(ctx context.Context, customer *models.Customer, currentToken string) error {
	now := time.Now().UTC()
	customer.Created = now
	customer.Modified = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Operation("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var leadID uuid.UUID
	err = tx.GetContext(ctx, &leadID,
		`SELECT id FROM lead WHERE id = $1 AND password_token = $2 FOR UPDATE`,
		customer.ID, currentToken,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NotFound("lead not found")
		}
		return errs.Operation("failed to lock lead", err)
	}

	insert := `
		INSERT INTO customers (
			id, phone_number, full_name, email, birth_date, id_type,
			id_number, id_expiry_date, auth_service_id, status,
			profile_image, created, modified
		) VALUES (
			:id, :phone_number, :full_name, :email, :birth_date, :id_type,
			:id_number, :id_expiry_date, :auth_service_id, :status,
			:profile_image, :created, :modified
		)
	`
	if _, err := tx.NamedExecContext(ctx, insert, customer); err != nil {
		if isUniqueViolation(err) {
			return errs.ResourceExists("customer already exists for this phone number")
		}
		return errs.Operation("failed to insert customer", err)
	}

	clear := `
		UPDATE lead
		SET password_token = NULL, password_token_expiration = NULL
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, clear, customer.ID); err != nil {
		return errs.Operation("failed to clear lead token", err)
	}

	if err := tx.Commit(); err != nil {
		return errs.Operation("failed to commit transaction", err)
	}
	return nil
}

// SetCustomerAuthToken stores a fresh 6-digit recovery secret.
func (r *AccountRepo) SetCustomerAuthToken(ctx context.Context, id uuid.UUID, token string, expiration time.Time) error {
	query := `
		UPDATE customers
		SET auth_token = $2, auth_token_expiration = $3, modified = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, token, expiration, time.Now().UTC())
	if err != nil {
		return errs.Operation("failed to set auth token", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.NotFound("customer not found")
	}
	return nil
}

// ConsumeCustomerAuthToken clears the recovery secret, conditioned on the
// value the caller verified.
func (r *AccountRepo) ConsumeCustomerAuthToken(ctx context.Context, id uuid.UUID, currentToken string) error {
	query := `
		UPDATE customers
		SET auth_token = NULL, auth_token_expiration = NULL, modified = $3
		WHERE id = $1 AND auth_token = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, currentToken, time.Now().UTC())
	if err != nil {
		return errs.Operation("failed to consume auth token", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.ExpiredToken("token already consumed")
	}
	return nil
}

// SetCustomerOTPToken stores a fresh 4-digit recovery secret.
func (r *AccountRepo) SetCustomerOTPToken(ctx context.Context, id uuid.UUID, token string, expiration time.Time) error {
	query := `
		UPDATE customers
		SET otp_token = $2, otp_token_expiration = $3, modified = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, token, expiration, time.Now().UTC())
	if err != nil {
		return errs.Operation("failed to set otp token", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.NotFound("customer not found")
	}
	return nil
}

// PromoteCustomerOTPToken consumes the 4-digit secret and stores the
// 6-digit continuation secret in its place, in a single conditional write.
func (r *AccountRepo) PromoteCustomerOTPToken(ctx context.Context, id uuid.UUID, currentOTPToken, authToken string, expiration time.Time) error {
	query := `
		UPDATE customers
		SET otp_token = NULL, otp_token_expiration = NULL,
			auth_token = $3, auth_token_expiration = $4, modified = $5
		WHERE id = $1 AND otp_token = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, currentOTPToken, authToken, expiration, time.Now().UTC())
	if err != nil {
		return errs.Operation("failed to promote otp token", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.ExpiredToken("token already consumed")
	}
	return nil
}

// StageNewPhone records the phone number a customer wants to move to, along
// with the secret sent to that number.
func (r *AccountRepo) StageNewPhone(ctx context.Context, id uuid.UUID, newPhoneNumber, authToken string, expiration time.Time) error {
	query := `
		UPDATE customers
		SET new_phone_number = $2, auth_token = $3,
			auth_token_expiration = $4, modified = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, newPhoneNumber, authToken, expiration, time.Now().UTC())
	if err != nil {
		return errs.Operation("failed to stage new phone", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.NotFound("customer not found")
	}
	return nil
}

// CommitNewPhone atomically moves the staged phone number into place,
// clears the staging column and the secret, and keeps the originating lead
// in step so the phone can re-onboard later.
func (r *AccountRepo) CommitNewPhone(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Operation("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var newPhone sql.NullString
	err = tx.GetContext(ctx, &newPhone,
		`SELECT new_phone_number FROM customers WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NotFound("customer not found")
		}
		return errs.Operation("failed to lock customer", err)
	}
	if !newPhone.Valid || newPhone.String == "" {
		return errs.BadRequest("no phone number staged")
	}

	update := `
		UPDATE customers
		SET phone_number = new_phone_number, new_phone_number = NULL,
			auth_token = NULL, auth_token_expiration = NULL, modified = $2
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, update, id, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return errs.ResourceExists("phone number already in use")
		}
		return errs.Operation("failed to commit new phone", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE lead SET phone_number = $2 WHERE id = $1`, id, newPhone.String); err != nil {
		if isUniqueViolation(err) {
			return errs.ResourceExists("phone number already in use")
		}
		return errs.Operation("failed to update lead phone", err)
	}

	if err := tx.Commit(); err != nil {
		return errs.Operation("failed to commit transaction", err)
	}
	return nil
}

// UpdateCustomerProfile patches the mutable profile attributes and returns
// the updated row.
func (r *AccountRepo) UpdateCustomerProfile(ctx context.Context, id uuid.UUID, update *models.CustomerUpdate) (*models.Customer, error) {
	query := `
		UPDATE customers
		SET full_name = COALESCE($2, full_name),
			email = COALESCE($3, email),
			birth_date = COALESCE($4, birth_date),
			id_type = COALESCE($5, id_type),
			id_number = COALESCE($6, id_number),
			id_expiry_date = COALESCE($7, id_expiry_date),
			profile_image = COALESCE($8, profile_image),
			modified = $9
		WHERE id = $1
		RETURNING ` + customerColumns

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query,
		id, update.FullName, update.Email, update.BirthDate,
		update.IDType, update.IDNumber, update.IDExpiryDate,
		update.ProfileImage, time.Now().UTC(),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFound("customer not found")
		}
		return nil, errs.Operation("failed to update customer", err)
	}
	return &customer, nil
}

// DeleteCustomerAndLead removes the customer row and the originating lead
// in one transaction.
func (r *AccountRepo) DeleteCustomerAndLead(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Operation("failed to begin transaction", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return errs.Operation("failed to delete customer", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errs.NotFound("customer not found")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM lead WHERE id = $1`, id); err != nil {
		return errs.Operation("failed to delete lead", err)
	}

	if err := tx.Commit(); err != nil {
		return errs.Operation("failed to commit transaction", err)
	}
	return nil
}
