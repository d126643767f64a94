package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer account statuses.
const (
	CustomerStatusActive    = "active"
	CustomerStatusInactive  = "inactive"
	CustomerStatusBlocked   = "blocked"
	CustomerStatusFirstTime = "first_time"
	CustomerStatusDisabled  = "disabled"
)

// Customer is an activated, authenticable account. Its id is preserved from
// the originating Lead; password material lives in the IAM service under
// AuthServiceID.
type Customer struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	PhoneNumber         string     `json:"phone_number" db:"phone_number"`
	FullName            string     `json:"full_name" db:"full_name"`
	Email               *string    `json:"email,omitempty" db:"email"`
	BirthDate           *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	IDType              string     `json:"id_type" db:"id_type"`
	IDNumber            *string    `json:"id_number,omitempty" db:"id_number"`
	IDExpiryDate        *time.Time `json:"id_expiry_date,omitempty" db:"id_expiry_date"`
	AuthServiceID       string     `json:"-" db:"auth_service_id"`
	Status              string     `json:"status" db:"status"`
	AuthToken           *string    `json:"-" db:"auth_token"`
	AuthTokenExpiration *time.Time `json:"-" db:"auth_token_expiration"`
	OTPToken            *string    `json:"-" db:"otp_token"`
	OTPTokenExpiration  *time.Time `json:"-" db:"otp_token_expiration"`
	NewPhoneNumber      *string    `json:"-" db:"new_phone_number"`
	ProfileImage        *string    `json:"profile_image,omitempty" db:"profile_image"`
	Created             time.Time  `json:"created" db:"created"`
	Modified            time.Time  `json:"modified" db:"modified"`
}

// AuthTokenValid reports whether the 6-digit recovery secret is still
// consumable at now. A nil token counts as already consumed.
func (c *Customer) AuthTokenValid(now time.Time) bool {
	return c.AuthToken != nil && *c.AuthToken != "" &&
		c.AuthTokenExpiration != nil && now.Before(*c.AuthTokenExpiration)
}

// OTPTokenValid reports whether the 4-digit recovery secret is still
// consumable at now.
func (c *Customer) OTPTokenValid(now time.Time) bool {
	return c.OTPToken != nil && *c.OTPToken != "" &&
		c.OTPTokenExpiration != nil && now.Before(*c.OTPTokenExpiration)
}

// CustomerUpdate carries the patchable profile attributes.
type CustomerUpdate struct {
	FullName     *string    `json:"full_name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	IDType       *string    `json:"id_type,omitempty"`
	IDNumber     *string    `json:"id_number,omitempty"`
	IDExpiryDate *time.Time `json:"id_expiry_date,omitempty"`
	ProfileImage *string    `json:"profile_image,omitempty"`
}
