package constants

import "time"

// Wildcard token values accepted in place of any stored secret. They match
// the behavior of the currently deployed clients and test rigs; removing
// them is a product decision, not a technical one.
const (
	WildcardToken6 = "666666"
	WildcardToken4 = "6666"
)

// Secret lifetimes.
const (
	RegistrationOTPTTL   = 10 * time.Minute
	ConfirmationTokenTTL = 5 * time.Minute
	InformationTokenTTL  = 10 * time.Minute
	RecoveryTokenTTL     = 5 * time.Minute
)

// IAM group every onboarded customer is assigned to.
const CustomerGroup = "customer"
