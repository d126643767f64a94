package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gasline/gasline/internal/pkg/constants"
	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// RequestPasswordReset starts the SMS PIN-reset flow: a 6-digit secret is
// stored on the customer and texted to the registered phone.
func (uc *AccountUC) RequestPasswordReset(ctx context.Context, phoneNumber string) (*models.RegisterResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, errs.BadRequest("invalid phone number format")
	}

	customer, err := uc.accountRepo.GetCustomerByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate reset token", err)
	}
	expiration := time.Now().Add(constants.RecoveryTokenTTL)
	if err := uc.accountRepo.SetCustomerAuthToken(ctx, customer.ID, token, expiration); err != nil {
		return nil, err
	}

	if err := uc.sendOTP(ctx, "customer", models.NotificationSubtypePinChange, customer.PhoneNumber, token); err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: customer.ID.String()}, nil
}

// ResetPassword finishes the SMS PIN-reset flow: the texted secret is
// verified and consumed, then the PIN is replaced in the IAM service.
func (uc *AccountUC) ResetPassword(ctx context.Context, id, token, newPIN string) error {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return errs.BadRequest("invalid customer id")
	}
	if !utils.ValidatePIN(newPIN) {
		return errs.BadRequest("PIN must be exactly four digits")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if err := verifyAuthToken(customer, token, constants.WildcardToken6); err != nil {
		return err
	}

	if err := uc.iamGW.ResetPassword(ctx, customer.AuthServiceID, newPIN); err != nil {
		return err
	}
	if customer.AuthToken != nil {
		if err := uc.accountRepo.ConsumeCustomerAuthToken(ctx, customer.ID, *customer.AuthToken); err != nil {
			return err
		}
	}

	uc.sendConfirmationSMS(ctx, models.NotificationSubtypePinChange, customer.PhoneNumber,
		"Your PIN has been changed. If this was not you, contact support immediately.")
	return nil
}

// ChangePassword changes the PIN of an authenticated customer after
// verifying the current one against the IAM service.
func (uc *AccountUC) ChangePassword(ctx context.Context, customerID, oldPIN, newPIN string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return errs.BadRequest("invalid customer id")
	}
	if !utils.ValidatePIN(newPIN) {
		return errs.BadRequest("PIN must be exactly four digits")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	// Re-authenticate with the current PIN; an IAM rejection surfaces as-is.
	if _, err := uc.iamGW.GetToken(ctx, customer.ID.String(), oldPIN); err != nil {
		return err
	}
	if err := uc.iamGW.ResetPassword(ctx, customer.AuthServiceID, newPIN); err != nil {
		return err
	}

	uc.sendConfirmationSMS(ctx, models.NotificationSubtypePinChange, customer.PhoneNumber,
		"Your PIN has been changed. If this was not you, contact support immediately.")
	return nil
}

// PinProcess starts the alternate PIN-reset flow with a 4-digit secret.
func (uc *AccountUC) PinProcess(ctx context.Context, phoneNumber string) (*models.RegisterResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, errs.BadRequest("invalid phone number format")
	}

	customer, err := uc.accountRepo.GetCustomerByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateShortOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate reset token", err)
	}
	expiration := time.Now().Add(constants.RecoveryTokenTTL)
	if err := uc.accountRepo.SetCustomerOTPToken(ctx, customer.ID, token, expiration); err != nil {
		return nil, err
	}

	if err := uc.sendOTP(ctx, "customer", models.NotificationSubtypePinChange, customer.PhoneNumber, token); err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: customer.ID.String()}, nil
}

// ResetPinProcess verifies the 4-digit secret and promotes the flow into its
// final step by minting a fresh 6-digit secret. Promotion consumes the
// 4-digit value, so it cannot be replayed.
func (uc *AccountUC) ResetPinProcess(ctx context.Context, id, token string) (*models.ResetPinProcessResponse, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.BadRequest("invalid customer id")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	token = strings.TrimSpace(token)
	if token != constants.WildcardToken4 {
		if customer.OTPToken == nil || *customer.OTPToken == "" {
			return nil, errs.ExpiredToken("token already consumed")
		}
		if !customer.OTPTokenValid(time.Now()) {
			return nil, errs.ExpiredToken("token expired")
		}
		if *customer.OTPToken != token {
			return nil, errs.BadRequest("invalid token")
		}
	}

	authToken, err := utils.GenerateOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate reset token", err)
	}
	expiration := time.Now().Add(constants.RecoveryTokenTTL)

	currentOTPToken := ""
	if customer.OTPToken != nil {
		currentOTPToken = *customer.OTPToken
	}
	if err := uc.accountRepo.PromoteCustomerOTPToken(ctx, customer.ID, currentOTPToken, authToken, expiration); err != nil {
		return nil, err
	}

	return &models.ResetPinProcessResponse{
		FullName:      customer.FullName,
		PasswordToken: authToken,
		ID:            customer.ID.String(),
	}, nil
}

// ProcessResetPin finishes the alternate PIN-reset flow for an authenticated
// customer: the promoted 6-digit secret is verified and consumed, then the
// PIN is replaced in the IAM service.
func (uc *AccountUC) ProcessResetPin(ctx context.Context, customerID, token, newPIN string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return errs.BadRequest("invalid customer id")
	}
	if !utils.ValidatePIN(newPIN) {
		return errs.BadRequest("PIN must be exactly four digits")
	}

	customer, err := uc.accountRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	if err := verifyAuthToken(customer, token, constants.WildcardToken6); err != nil {
		return err
	}

	if err := uc.iamGW.ResetPassword(ctx, customer.AuthServiceID, newPIN); err != nil {
		return err
	}
	if customer.AuthToken != nil {
		if err := uc.accountRepo.ConsumeCustomerAuthToken(ctx, customer.ID, *customer.AuthToken); err != nil {
			return err
		}
	}

	uc.sendConfirmationSMS(ctx, models.NotificationSubtypePinChange, customer.PhoneNumber,
		"Your PIN has been changed. If this was not you, contact support immediately.")
	return nil
}

// verifyAuthToken checks a presented secret against the customer's stored
// 6-digit recovery token. A consumed (null) or expired token reports
// ExpiredToken; a mismatching value reports BadRequest. The wildcard value
// bypasses the check entirely.
func verifyAuthToken(customer *models.Customer, token, wildcard string) error {
	token = strings.TrimSpace(token)
	if token == wildcard {
		return nil
	}
	if customer.AuthToken == nil || *customer.AuthToken == "" {
		return errs.ExpiredToken("token already consumed")
	}
	if !customer.AuthTokenValid(time.Now()) {
		return errs.ExpiredToken("token expired")
	}
	if *customer.AuthToken != token {
		return errs.BadRequest("invalid token")
	}
	return nil
}
