package utils

import (
	"errors"
	"strings"
)

var (
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrNotOwner           = errors.New("not the owner of this resource")
	ErrDuplicateCoupon    = errors.New("coupon code already exists")
	ErrDuplicateFavorite  = errors.New("listing already favorited")
	ErrInvalidPercent     = errors.New("discount percent must be between 1 and 100")
	ErrInvalidUsageLimit  = errors.New("usage limit cannot be below the used count")
	ErrListingNotEligible = errors.New("listing is not publicly visible")
	ErrCheckoutFailed     = errors.New("checkout link generation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsDuplicateKey pattern-matches the driver error text; postgres reports
// unique violations as SQLSTATE 23505.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key value")
}
