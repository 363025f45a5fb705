package errors

import "errors"

var (
	ErrIntakeClosed        = errors.New("order intake is closed")
	ErrMissingRequired     = errors.New("required field is empty")
	ErrPromoNotActive      = errors.New("no promo code is published")
	ErrPromoMismatch       = errors.New("promo code does not match")
	ErrPromoAlreadyApplied = errors.New("promo code already applied")
	ErrUnauthorized        = errors.New("admin credentials rejected")
	ErrNotFound            = errors.New("not found")
	ErrMissingConfirmation = errors.New("destructive action requires confirmation")
	ErrBackendUnavailable  = errors.New("backend unavailable")
)
