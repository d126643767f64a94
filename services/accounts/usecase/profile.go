package usecase

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/models"
)

// GetAccount returns the customer profile.
func (uc *AccountUC) GetAccount(ctx context.Context, customerID string) (*models.Customer, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, errs.BadRequest("invalid customer id")
	}
	return uc.accountRepo.GetCustomerByID(ctx, id)
}

// UpdateAccount patches the mutable profile attributes and mirrors the name
// change into the IAM service.
func (uc *AccountUC) UpdateAccount(ctx context.Context, customerID string, update *models.CustomerUpdate) (*models.Customer, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, errs.BadRequest("invalid customer id")
	}
	if update.IDType != nil && !validIDType(*update.IDType) {
		return nil, errs.BadRequest("unsupported id_type")
	}

	customer, err := uc.accountRepo.UpdateCustomerProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil || update.Email != nil {
		iamUpdate := &models.IAMUserUpdate{Email: update.Email}
		if update.FullName != nil {
			first, last := splitFullName(*update.FullName)
			iamUpdate.FirstName = &first
			iamUpdate.LastName = &last
		}
		if err := uc.iamGW.UpdateUser(ctx, customer.AuthServiceID, iamUpdate); err != nil {
			logger.Warn("failed to mirror profile update to IAM",
				logger.String("customer_id", customer.ID.String()),
				logger.Err(err))
		}
	}
	return customer, nil
}

// DeleteAccount removes the customer: the IAM principal first, so no
// authenticable identity outlives its profile, then the local rows.
func (uc *AccountUC) DeleteAccount(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return errs.BadRequest("invalid customer id")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.iamGW.DeleteUser(ctx, customer.AuthServiceID); err != nil {
		// A principal the IAM service no longer knows about is already the
		// desired end state.
		if !errs.IsKind(err, errs.KindNotFound) && !isIAMNotFound(err) {
			return err
		}
	}
	return uc.accountRepo.DeleteCustomerAndLead(ctx, customer.ID)
}

func isIAMNotFound(err error) bool {
	appErr, ok := errs.As(err)
	return ok && appErr.Kind == errs.KindIAM && appErr.Status == http.StatusNotFound
}
