package domain

import "errors"

// ErrInsufficientFunds is returned by Account.Debit when the amount exceeds the balance.
// The message is matched verbatim by downstream consumers and must not change.
var ErrInsufficientFunds = errors.New("Dinero Insuficiente")

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrBankNotFound    = errors.New("bank not found")
)
