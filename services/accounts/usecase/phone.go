package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gasline/gasline/internal/pkg/constants"
	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// ResetPhoneRequest starts a phone-number change: a 6-digit secret is texted
// to the CURRENT phone to prove the caller still controls it.
func (uc *AccountUC) ResetPhoneRequest(ctx context.Context, customerID string) (*models.RegisterResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, errs.BadRequest("invalid customer id")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate verification token", err)
	}
	expiration := time.Now().Add(constants.RecoveryTokenTTL)
	if err := uc.accountRepo.SetCustomerAuthToken(ctx, customer.ID, token, expiration); err != nil {
		return nil, err
	}

	if err := uc.sendOTP(ctx, "customer", models.NotificationSubtypePhoneChange, customer.PhoneNumber, token); err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: customer.ID.String()}, nil
}

// ResetPhone verifies the current-phone secret, stages the new number and
// texts a fresh secret to the NEW phone to prove the caller controls it too.
func (uc *AccountUC) ResetPhone(ctx context.Context, customerID, newPhoneNumber, token string) (*models.RegisterResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, errs.BadRequest("invalid customer id")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := verifyAuthToken(customer, token, constants.WildcardToken6); err != nil {
		return nil, err
	}

	newPhone, err := utils.NormalizePhoneNumber(newPhoneNumber)
	if err != nil {
		return nil, errs.BadRequest("invalid phone number format")
	}
	if _, err := uc.accountRepo.GetCustomerByPhone(ctx, newPhone); err == nil {
		return nil, errs.ResourceExists("phone number already registered")
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return nil, err
	}

	newToken, err := utils.GenerateOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate verification token", err)
	}
	expiration := time.Now().Add(constants.RecoveryTokenTTL)
	if err := uc.accountRepo.StageNewPhone(ctx, customer.ID, newPhone, newToken, expiration); err != nil {
		return nil, err
	}

	if err := uc.sendOTP(ctx, "customer", models.NotificationSubtypePhoneChange, newPhone, newToken); err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: customer.ID.String()}, nil
}

// UpdatePhone verifies the new-phone secret and commits the staged number.
func (uc *AccountUC) UpdatePhone(ctx context.Context, customerID, token string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return errs.BadRequest("invalid customer id")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	if err := verifyAuthToken(customer, token, constants.WildcardToken6); err != nil {
		return err
	}

	if err := uc.accountRepo.CommitNewPhone(ctx, customer.ID); err != nil {
		return err
	}

	uc.sendConfirmationSMS(ctx, models.NotificationSubtypePhoneChange, customer.PhoneNumber,
		"Your registered phone number has been changed. If this was not you, contact support immediately.")
	return nil
}
