package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

func setupRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return &AccountRepo{cfg: &models.Config{}, db: sqlxDB}, mock
}

func leadRows(lead *models.Lead) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "phone_number", "full_name", "birth_date", "id_type", "id_number",
		"id_expiry_date", "otp", "otp_expiration", "password_token",
		"password_token_expiration", "created",
	}).AddRow(
		lead.ID, lead.PhoneNumber, lead.FullName, lead.BirthDate, lead.IDType,
		lead.IDNumber, lead.IDExpiryDate, lead.OTP, lead.OTPExpiration,
		lead.PasswordToken, lead.PasswordTokenExpiration, lead.Created,
	)
}

func TestCreateLead_AssignsIDAndCreated(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectExec("INSERT INTO lead").
		WillReturnResult(sqlmock.NewResult(0, 1))

	lead := &models.Lead{
		PhoneNumber:   "0244000001",
		OTP:           "123456",
		OTPExpiration: time.Now().Add(10 * time.Minute),
	}
	err := repo.CreateLead(context.Background(), lead)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.False(t, lead.Created.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLead_DuplicatePhone(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectExec("INSERT INTO lead").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.CreateLead(context.Background(), &models.Lead{
		PhoneNumber: "0244000001",
		OTP:         "123456",
	})

	assert.True(t, errs.IsKind(err, errs.KindResourceExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLeadByPhone_NotFound(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM lead WHERE phone_number").
		WithArgs("0244000001").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLeadByPhone(context.Background(), "0244000001")

	assert.True(t, errs.IsKind(err, errs.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLeadByID_Success(t *testing.T) {
	repo, mock := setupRepoTest(t)

	leadID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM lead WHERE id").
		WithArgs(leadID).
		WillReturnRows(leadRows(&models.Lead{
			ID:            leadID,
			PhoneNumber:   "0244000001",
			OTP:           "123456",
			OTPExpiration: time.Now().Add(10 * time.Minute),
			Created:       time.Now(),
		}))

	lead, err := repo.GetLeadByID(context.Background(), leadID)

	require.NoError(t, err)
	assert.Equal(t, leadID, lead.ID)
	assert.Equal(t, "123456", lead.OTP)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRotateLeadOTP_NoRow(t *testing.T) {
	repo, mock := setupRepoTest(t)

	leadID := uuid.New()
	mock.ExpectExec("UPDATE lead").
		WithArgs(leadID, "654321", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RotateLeadOTP(context.Background(), leadID, "654321", time.Now())

	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestPromoteLeadOTP_ConditionalOnCurrentValue(t *testing.T) {
	repo, mock := setupRepoTest(t)

	leadID := uuid.New()
	exp := time.Now().Add(5 * time.Minute)
	mock.ExpectExec("UPDATE lead").
		WithArgs(leadID, "123456", "new-token", exp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PromoteLeadOTP(context.Background(), leadID, "123456", "new-token", exp)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoteLeadOTP_ConcurrentRotationLoses(t *testing.T) {
	repo, mock := setupRepoTest(t)

	// The OTP read by this caller was rotated underneath it; the conditional
	// write hits zero rows.
	leadID := uuid.New()
	mock.ExpectExec("UPDATE lead").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.PromoteLeadOTP(context.Background(), leadID, "stale", "new-token", time.Now())

	assert.True(t, errs.IsKind(err, errs.KindBadRequest))
}

func TestUpdateLeadInformation_ConditionalOnToken(t *testing.T) {
	repo, mock := setupRepoTest(t)

	leadID := uuid.New()
	fullName := "Ama Mensah"
	newToken := "rotated-token"
	exp := time.Now().Add(10 * time.Minute)
	lead := &models.Lead{
		ID:                      leadID,
		FullName:                &fullName,
		PasswordToken:           &newToken,
		PasswordTokenExpiration: &exp,
	}

	mock.ExpectExec("UPDATE lead").
		WithArgs(leadID, "current-token", fullName, nil, nil, nil, nil, newToken, exp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLeadInformation(context.Background(), lead, "current-token")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
