package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrStoreFailure is returned when a product or user lookup fails in the store
	ErrStoreFailure = errors.New("store operation failed")

	// ErrUserNotFound is returned when no user exists for the given email
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when creating a user with an email already in use
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrOTPNotFound is returned when no OTP has been issued for the given email
	ErrOTPNotFound = errors.New("no OTP found for this email")

	// ErrOTPExpired is returned when the stored OTP is past its validity window
	ErrOTPExpired = errors.New("OTP has expired")

	// ErrOTPMismatch is returned when the submitted OTP does not match the stored one
	ErrOTPMismatch = errors.New("invalid OTP")

	// ErrMailFailure is returned when the OTP email cannot be sent
	ErrMailFailure = errors.New("failed to send OTP email")
)
