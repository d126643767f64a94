package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

func customerRows(customer *models.Customer) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "phone_number", "full_name", "email", "birth_date", "id_type",
		"id_number", "id_expiry_date", "auth_service_id", "status",
		"auth_token", "auth_token_expiration", "otp_token",
		"otp_token_expiration", "new_phone_number", "profile_image",
		"created", "modified",
	}).AddRow(
		customer.ID, customer.PhoneNumber, customer.FullName, customer.Email,
		customer.BirthDate, customer.IDType, customer.IDNumber,
		customer.IDExpiryDate, customer.AuthServiceID, customer.Status,
		customer.AuthToken, customer.AuthTokenExpiration, customer.OTPToken,
		customer.OTPTokenExpiration, customer.NewPhoneNumber,
		customer.ProfileImage, customer.Created, customer.Modified,
	)
}

func TestGetCustomerByPhone_Success(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE phone_number").
		WithArgs("0244000001").
		WillReturnRows(customerRows(&models.Customer{
			ID:            customerID,
			PhoneNumber:   "0244000001",
			FullName:      "Ama Mensah",
			IDType:        models.IDTypePassport,
			AuthServiceID: "iam-user-1",
			Status:        models.CustomerStatusActive,
			Created:       time.Now(),
			Modified:      time.Now(),
		}))

	customer, err := repo.GetCustomerByPhone(context.Background(), "0244000001")

	require.NoError(t, err)
	assert.Equal(t, customerID, customer.ID)
	assert.Equal(t, models.CustomerStatusActive, customer.Status)
}

func TestConvertLeadToCustomer_Success(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM lead WHERE id = (.+) AND password_token = (.+) FOR UPDATE").
		WithArgs(customerID, "the-token").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(customerID))
	mock.ExpectExec("INSERT INTO customers").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE lead").
		WithArgs(customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ConvertLeadToCustomer(context.Background(), &models.Customer{
		ID:            customerID,
		PhoneNumber:   "0244000001",
		FullName:      "Ama Mensah",
		IDType:        models.IDTypePassport,
		AuthServiceID: "iam-user-1",
		Status:        models.CustomerStatusActive,
	}, "the-token")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertLeadToCustomer_TokenAlreadyConsumed(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM lead").
		WithArgs(customerID, "stale-token").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.ConvertLeadToCustomer(context.Background(), &models.Customer{
		ID: customerID,
	}, "stale-token")

	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestConvertLeadToCustomer_DuplicatePhone(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM lead").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(customerID))
	mock.ExpectExec("INSERT INTO customers").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.ConvertLeadToCustomer(context.Background(), &models.Customer{
		ID: customerID,
	}, "the-token")

	assert.True(t, errs.IsKind(err, errs.KindResourceExists))
}

func TestConsumeCustomerAuthToken_AlreadyConsumed(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectExec("UPDATE customers").
		WithArgs(customerID, "482913", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConsumeCustomerAuthToken(context.Background(), customerID, "482913")

	assert.True(t, errs.IsKind(err, errs.KindExpiredToken))
}

func TestPromoteCustomerOTPToken_ClearsShortAndSetsLong(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	exp := time.Now().Add(5 * time.Minute)
	mock.ExpectExec("UPDATE customers").
		WithArgs(customerID, "4821", "591042", exp, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PromoteCustomerOTPToken(context.Background(), customerID, "4821", "591042", exp)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitNewPhone_TransactionShape(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT new_phone_number FROM customers WHERE id = (.+) FOR UPDATE").
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"new_phone_number"}).AddRow("0500000002"))
	mock.ExpectExec("UPDATE customers").
		WithArgs(customerID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE lead").
		WithArgs(customerID, "0500000002").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CommitNewPhone(context.Background(), customerID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitNewPhone_NothingStaged(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT new_phone_number FROM customers").
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"new_phone_number"}).AddRow(nil))
	mock.ExpectRollback()

	err := repo.CommitNewPhone(context.Background(), customerID)

	assert.True(t, errs.IsKind(err, errs.KindBadRequest))
}

func TestCommitNewPhone_LeadAlreadyHoldsPhone(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT new_phone_number FROM customers").
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"new_phone_number"}).AddRow("0500000002"))
	mock.ExpectExec("UPDATE customers").
		WithArgs(customerID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE lead").
		WithArgs(customerID, "0500000002").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CommitNewPhone(context.Background(), customerID)

	assert.True(t, errs.IsKind(err, errs.KindResourceExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCustomerAndLead_RemovesBothRows(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM customers").
		WithArgs(customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM lead").
		WithArgs(customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteCustomerAndLead(context.Background(), customerID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomerProfile_PatchSemantics(t *testing.T) {
	repo, mock := setupRepoTest(t)

	customerID := uuid.New()
	fullName := "Ama Owusu"
	mock.ExpectQuery("UPDATE customers").
		WithArgs(customerID, fullName, nil, nil, nil, nil, nil, nil, sqlmock.AnyArg()).
		WillReturnRows(customerRows(&models.Customer{
			ID:       customerID,
			FullName: fullName,
			IDType:   models.IDTypePassport,
			Status:   models.CustomerStatusActive,
			Created:  time.Now(),
			Modified: time.Now(),
		}))

	customer, err := repo.UpdateCustomerProfile(context.Background(), customerID, &models.CustomerUpdate{
		FullName: &fullName,
	})

	require.NoError(t, err)
	assert.Equal(t, fullName, customer.FullName)
}
