package models

import "errors"

// Business-rule failures cross service boundaries as error values, never as
// panics. Messages are part of the API contract.
var (
	ErrEmailVerificationRequired = errors.New("Email verification required to create petitions")
	ErrPhoneVerificationRequired = errors.New("Phone number verification required to sign petitions")
	ErrPetitionNotFound          = errors.New("Petition not found")
	ErrUnauthorizedUpdate        = errors.New("Unauthorized to update petition")
	ErrUnauthorizedDelete        = errors.New("Unauthorized to delete petition")
	ErrOnlyDraftUpdatable        = errors.New("Can only update draft petitions")
	ErrInvalidPetitionData       = errors.New("Invalid petition data")
	ErrPetitionNotSignable       = errors.New("Petition is not available for signing")
	ErrTargetReached             = errors.New("Petition has already reached its signature target")
	ErrAlreadySigned             = errors.New("This phone number has already signed this petition")
	ErrUnauthorizedStats         = errors.New("Unauthorized to view petition statistics")
	ErrInvalidTransition         = errors.New("Invalid status transition")
	ErrPauseReasonRequired       = errors.New("Pause reason is required")
	ErrUserNotFound              = errors.New("User not found")
	ErrAccountDisabled           = errors.New("Account is disabled")
	ErrMissingPermission         = errors.New("Missing moderator permission for this action")
)

// IsNotFound reports whether err maps to a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPetitionNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsForbidden reports whether err maps to a 403 response.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrUnauthorizedUpdate) ||
		errors.Is(err, ErrUnauthorizedDelete) ||
		errors.Is(err, ErrUnauthorizedStats) ||
		errors.Is(err, ErrMissingPermission)
}

// IsBusinessError reports whether err is an expected rule failure rather
// than an infrastructure fault.
func IsBusinessError(err error) bool {
	for _, e := range []error{
		ErrEmailVerificationRequired, ErrPhoneVerificationRequired,
		ErrPetitionNotFound, ErrUnauthorizedUpdate, ErrUnauthorizedDelete,
		ErrOnlyDraftUpdatable, ErrInvalidPetitionData, ErrPetitionNotSignable,
		ErrTargetReached, ErrAlreadySigned, ErrUnauthorizedStats,
		ErrInvalidTransition, ErrPauseReasonRequired, ErrUserNotFound,
		ErrAccountDisabled, ErrMissingPermission,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// ValidationError carries one schema violation in the response envelope.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
