package usecase

import (
	"context"
	"time"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

// Login authenticates a customer by phone and PIN against the IAM service.
// Failed credential attempts count toward a per-phone lockout; a successful
// login clears the counter.
func (uc *AccountUC) Login(ctx context.Context, phoneNumber, pin, requestIP string) (*models.LoginResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, errs.BadRequest("invalid phone number format")
	}

	attempt, err := uc.accountRepo.GetLoginAttempt(ctx, phone)
	if err != nil {
		return nil, err
	}
	if attempt != nil && attempt.Locked(time.Now()) {
		return nil, errs.Unauthorized("account temporarily locked, try again later")
	}

	customer, err := uc.accountRepo.GetCustomerByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	tokens, err := uc.iamGW.GetToken(ctx, customer.ID.String(), pin)
	if err != nil {
		if errs.IsKind(err, errs.KindIAM) {
			if _, recErr := uc.accountRepo.RecordFailedLogin(ctx, phone, requestIP,
				uc.cfg.Auth.MaxLoginAttempts,
				time.Duration(uc.cfg.Auth.LockoutMinutes)*time.Minute); recErr != nil {
				logger.Error("failed to record login attempt",
					logger.String("phone_number", phone),
					logger.Err(recErr))
			}
		}
		return nil, err
	}

	if err := uc.accountRepo.ResetLoginAttempts(ctx, phone); err != nil {
		logger.Warn("failed to reset login attempts",
			logger.String("phone_number", phone),
			logger.Err(err))
	}

	resp := &models.LoginResponse{
		Access:      tokens.Access,
		Refresh:     tokens.Refresh,
		ID:          customer.ID.String(),
		PhoneNumber: customer.PhoneNumber,
		FullName:    customer.FullName,
		IDType:      customer.IDType,
	}
	if customer.IDNumber != nil {
		resp.IDNumber = *customer.IDNumber
	}
	return resp, nil
}

// RefreshToken exchanges a refresh token for a new pair.
func (uc *AccountUC) RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error) {
	return uc.iamGW.RefreshToken(ctx, refresh)
}
