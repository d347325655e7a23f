package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents an owner's account in the domain layer
// Balance is an exact decimal; it is only changed through Debit and Credit.
type Account struct {
	owner   string
	balance decimal.Decimal
	bank    *Bank // set by Bank.AddAccount, not owned
}

// NewAccount creates an account for owner with an initial balance
func NewAccount(owner string, balance decimal.Decimal) *Account {
	return &Account{
		owner:   owner,
		balance: balance,
	}
}

// Owner returns the account holder
func (a *Account) Owner() string {
	return a.owner
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Bank returns the bank that registered the account, or nil
func (a *Account) Bank() *Bank {
	return a.bank
}

// PlainBalance renders the balance without exponent, keeping every
// fractional digit carried by its scale ("900.12345", "3000").
func (a *Account) PlainBalance() string {
	if exp := a.balance.Exponent(); exp < 0 {
		return a.balance.StringFixed(-exp)
	}
	return a.balance.String()
}

// Debit subtracts amount from the balance
// Returns ErrInsufficientFunds and leaves the balance untouched if balance < amount.
// The sign of amount is not checked.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Credit adds amount to the balance unconditionally
func (a *Account) Credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Equal reports whether both accounts have the same owner and a numerically
// equal balance. The bank back-reference is ignored.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.owner == other.owner && a.balance.Equal(other.balance)
}

func (a *Account) String() string {
	return a.owner + ": " + a.PlainBalance()
}
