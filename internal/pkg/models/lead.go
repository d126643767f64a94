package models

import (
	"time"

	"github.com/google/uuid"
)

// Identification document types accepted during onboarding.
const (
	IDTypeNationalID     = "national_id"
	IDTypeDriversLicense = "drivers_license"
	IDTypePassport       = "passport"
	IDTypeVotersID       = "voters_id"
)

// Lead is the pre-activation registration record, indexed by phone number.
// It is created on the first registration attempt, mutated on every OTP
// resend and profile submission, and consumed when converted into a Customer.
type Lead struct {
	ID                      uuid.UUID  `json:"id" db:"id"`
	PhoneNumber             string     `json:"phone_number" db:"phone_number"`
	FullName                *string    `json:"full_name,omitempty" db:"full_name"`
	BirthDate               *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	IDType                  *string    `json:"id_type,omitempty" db:"id_type"`
	IDNumber                *string    `json:"id_number,omitempty" db:"id_number"`
	IDExpiryDate            *time.Time `json:"id_expiry_date,omitempty" db:"id_expiry_date"`
	OTP                     string     `json:"-" db:"otp"`
	OTPExpiration           time.Time  `json:"-" db:"otp_expiration"`
	PasswordToken           *string    `json:"-" db:"password_token"`
	PasswordTokenExpiration *time.Time `json:"-" db:"password_token_expiration"`
	Created                 time.Time  `json:"created" db:"created"`
}

// OTPValid reports whether the stored OTP is still consumable at now.
func (l *Lead) OTPValid(now time.Time) bool {
	return l.OTP != "" && now.Before(l.OTPExpiration)
}

// PasswordTokenValid reports whether the continuation token is still
// consumable at now. A nil token counts as already consumed.
func (l *Lead) PasswordTokenValid(now time.Time) bool {
	return l.PasswordToken != nil && *l.PasswordToken != "" &&
		l.PasswordTokenExpiration != nil && now.Before(*l.PasswordTokenExpiration)
}
