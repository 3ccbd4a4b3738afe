package domain

import "errors"

// Identity errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotVerified    = errors.New("user email not verified")
)

// OTP errors
var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPInvalid  = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Catalog errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotProductOwner = errors.New("user does not own this product")
)

// Cart errors
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartNotOwned     = errors.New("cart does not belong to user")
	ErrCartLineNotFound = errors.New("product not in cart")
	ErrCartEmpty        = errors.New("cart is empty")
)

// Order errors
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotOwned      = errors.New("order does not belong to user")
	ErrCheckoutInProgress = errors.New("checkout already in progress for this cart")
)
