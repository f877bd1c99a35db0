package utils

import "errors"

var (
	ErrUnsupportedGateway  = errors.New("unsupported payment gateway")
	ErrInvalidAmount       = errors.New("amount must be at least 0.01")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter code")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrPayoutNotFound         = errors.New("payout not found")
	ErrPayoutExpired          = errors.New("payout expired")
	ErrPayoutAlreadyCompleted = errors.New("payout already completed")
	ErrInvalidUpiID           = errors.New("invalid UPI ID format")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
