package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

const loginAttemptColumns = `
	phone_number, request_ip_address, failed_login_attempts,
	failed_login_time, status, lockout_expiration, expires_in
`

// GetLoginAttempt returns the anti-abuse counter for a phone number, or nil
// when no failed attempt has been recorded.
func (r *AccountRepo) GetLoginAttempt(ctx context.Context, phoneNumber string) (*models.LoginAttempt, error) {
	query := `SELECT ` + loginAttemptColumns + ` FROM login_attempts WHERE phone_number = $1`

	var attempt models.LoginAttempt
	err := r.db.GetContext(ctx, &attempt, query, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.Operation("failed to get login attempt", err)
	}
	return &attempt, nil
}

// RecordFailedLogin increments the per-phone counter, arming the lockout
// once the threshold is reached. Returns the updated record.
func (r *AccountRepo) RecordFailedLogin(ctx context.Context, phoneNumber, requestIP string, maxAttempts int, lockout time.Duration) (*models.LoginAttempt, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO login_attempts (
			phone_number, request_ip_address, failed_login_attempts,
			failed_login_time, status, lockout_expiration, expires_in
		) VALUES ($1, $2, 1, $3, $4, NULL, $5)
		ON CONFLICT (phone_number) DO UPDATE
		SET failed_login_attempts = login_attempts.failed_login_attempts + 1,
			request_ip_address = EXCLUDED.request_ip_address,
			failed_login_time = EXCLUDED.failed_login_time,
			status = CASE
				WHEN login_attempts.failed_login_attempts + 1 >= $6 THEN $7
				ELSE $4
			END,
			lockout_expiration = CASE
				WHEN login_attempts.failed_login_attempts + 1 >= $6 THEN $8
				ELSE NULL
			END
		RETURNING ` + loginAttemptColumns

	var attempt models.LoginAttempt
	err := r.db.GetContext(ctx, &attempt, query,
		phoneNumber, nullableString(requestIP), now,
		models.LoginAttemptStatusOpen, int(lockout.Seconds()),
		maxAttempts, models.LoginAttemptStatusLocked, now.Add(lockout),
	)
	if err != nil {
		return nil, errs.Operation("failed to record login attempt", err)
	}
	return &attempt, nil
}

// ResetLoginAttempts clears the counter after a successful grant.
func (r *AccountRepo) ResetLoginAttempts(ctx context.Context, phoneNumber string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM login_attempts WHERE phone_number = $1`, phoneNumber); err != nil {
		return errs.Operation("failed to reset login attempts", err)
	}
	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
