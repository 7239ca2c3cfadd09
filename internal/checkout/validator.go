package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Brandbong/Vedham/internal/domain"
)

// Validation errors are shown to the customer as-is, one at a time.
var (
	ErrFullNameRequired = errors.New("Please enter full name")
	ErrInvalidPhone     = errors.New("Please enter a valid 10-digit mobile number")
	ErrInvalidEmail     = errors.New("Please enter a valid email address")
	ErrAddress1Required = errors.New("Please enter address line 1")
	ErrCityRequired     = errors.New("Please enter city")
	ErrStateRequired    = errors.New("Please enter state")
	ErrInvalidPincode   = errors.New("Please enter a valid 6-digit PIN code")
)

var (
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// Validate checks the customer form rule by rule in a fixed order and reports
// the first violation only. An empty cart is not a form problem; the caller
// checks that separately before invoking checkout.
func Validate(form domain.CustomerForm) error {
	if strings.TrimSpace(form.FullName) == "" {
		return ErrFullNameRequired
	}
	if !phoneRegex.MatchString(form.Phone) {
		return ErrInvalidPhone
	}
	if !emailRegex.MatchString(form.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(form.Address1) == "" {
		return ErrAddress1Required
	}
	if strings.TrimSpace(form.City) == "" {
		return ErrCityRequired
	}
	if strings.TrimSpace(form.State) == "" {
		return ErrStateRequired
	}
	if !pincodeRegex.MatchString(form.Pincode) {
		return ErrInvalidPincode
	}
	return nil
}
