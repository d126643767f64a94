package models

// RegisterRequest starts onboarding for a phone number.
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// RegisterResponse carries the lead id back to the client.
type RegisterResponse struct {
	ID string `json:"id"`
}

// ConfirmTokenRequest verifies the registration OTP.
type ConfirmTokenRequest struct {
	ID    string `json:"id" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// ConfirmTokenResponse returns the continuation secret for the next step.
// The field name matches the wire contract of the existing clients.
type ConfirmTokenResponse struct {
	ConformationToken string `json:"conformation_token"`
	ID                string `json:"id"`
}

// CustomerInformationRequest supplies the profile fields collected between
// OTP confirmation and PIN set.
type CustomerInformationRequest struct {
	ID                string `json:"id" validate:"required"`
	ConformationToken string `json:"conformation_token" validate:"required"`
	FullName          string `json:"full_name" validate:"required"`
	BirthDate         string `json:"birth_date,omitempty"`
	IDType            string `json:"id_type,omitempty"`
	IDNumber          string `json:"id_number,omitempty"`
	IDExpiryDate      string `json:"id_expiry_date,omitempty"`
}

// PasswordTokenResponse returns the rotated continuation secret.
type PasswordTokenResponse struct {
	PasswordToken string `json:"password_token"`
	ID            string `json:"id"`
}

// AddPINRequest finishes onboarding by setting the 4-digit PIN.
type AddPINRequest struct {
	PasswordToken string `json:"password_token" validate:"required"`
	PIN           string `json:"pin" validate:"required"`
}

// ResendTokenRequest rotates the registration OTP.
type ResendTokenRequest struct {
	ID string `json:"id" validate:"required"`
}

// LoginRequest authenticates a customer by phone and PIN.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	PIN         string `json:"pin" validate:"required"`
}

// LoginResponse carries the granted tokens plus the profile summary the
// mobile client renders after login.
type LoginResponse struct {
	Access      string `json:"access"`
	Refresh     string `json:"refresh"`
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	IDNumber    string `json:"id_number"`
	IDType      string `json:"id_type"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// ForgotPasswordRequest starts the SMS PIN-reset flow.
type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// ResetPasswordRequest finishes the SMS PIN-reset flow.
type ResetPasswordRequest struct {
	ID     string `json:"id" validate:"required"`
	Token  string `json:"token" validate:"required"`
	NewPIN string `json:"new_pin" validate:"required"`
}

// ChangePasswordRequest changes the PIN of an authenticated customer.
type ChangePasswordRequest struct {
	OldPIN string `json:"old_pin" validate:"required"`
	NewPIN string `json:"new_pin" validate:"required"`
}

// PinProcessRequest starts the alternate, 4-digit PIN-reset flow.
type PinProcessRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// ResetPinProcessRequest verifies the 4-digit secret of the alternate flow.
type ResetPinProcessRequest struct {
	ID    string `json:"id" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// ResetPinProcessResponse promotes the alternate flow into its final step.
type ResetPinProcessResponse struct {
	FullName      string `json:"full_name"`
	PasswordToken string `json:"password_token"`
	ID            string `json:"id"`
}

// ProcessResetPinRequest finishes the alternate PIN-reset flow.
type ProcessResetPinRequest struct {
	Token  string `json:"token" validate:"required"`
	NewPIN string `json:"new_pin" validate:"required"`
}

// ResetPhoneRequest stages a new phone number on the customer.
type ResetPhoneRequest struct {
	NewPhoneNumber string `json:"new_phone_number" validate:"required"`
	Token          string `json:"token" validate:"required"`
}

// UpdatePhoneRequest commits the staged phone number.
type UpdatePhoneRequest struct {
	Token string `json:"token" validate:"required"`
}
