package game

import "errors"

var (
	// ErrInsufficientFunds is returned by the Banker when a debit would leave a negative balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidOperation marks a violated precondition (double mortgage, negative amount, ...).
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnknownPlayer    = errors.New("unknown player")
)
