package models

// TokenPair is an access/refresh grant issued by the IAM service.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IAMUser is the identity-service view of a principal.
type IAMUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Enabled   bool   `json:"enabled"`
}

// IAMGroup is a realm group a principal can be assigned to.
type IAMGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateIAMUserRequest creates a principal, assigns it to a group and grants
// an initial token pair in one gateway call.
type CreateIAMUserRequest struct {
	Username  string
	FirstName string
	LastName  string
	Password  string
	Group     string
	Email     string
}

/// CreatedIAMUser is the result of CreateIAMUserRequest: the new principal id
// plus the token pair granted with the freshly set password.
type CreatedIAMUser struct {
	ID     string
	Tokens TokenPair
}

// IAMUserUpdate carries the mutable principal attributes.
type IAMUserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Enabled   *bool
}
