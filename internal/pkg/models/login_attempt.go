package models

import "time"

// Login attempt record statuses.
const (
	LoginAttemptStatusOpen   = "open"
	LoginAttemptStatusLocked = "locked"
)

// LoginAttempt is the per-phone anti-abuse counter. Failed grants increment
// it; a successful grant resets it; a populated LockoutExpiration blocks
// further attempts until elapsed.
type LoginAttempt struct {
	PhoneNumber         string     `json:"phone_number" db:"phone_number"`
	RequestIPAddress    *string    `json:"request_ip_address,omitempty" db:"request_ip_address"`
	FailedLoginAttempts int        `json:"failed_login_attempts" db:"failed_login_attempts"`
	FailedLoginTime     time.Time  `json:"failed_login_time" db:"failed_login_time"`
	Status              string     `json:"status" db:"status"`
	LockoutExpiration   *time.Time `json:"lockout_expiration,omitempty" db:"lockout_expiration"`
	ExpiresIn           int        `json:"expires_in" db:"expires_in"`
}

// Locked reports whether login is blocked at now.
func (a *LoginAttempt) Locked(now time.Time) bool {
	return a.LockoutExpiration != nil && now.Before(*a.LockoutExpiration)
}
