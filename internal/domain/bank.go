package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bank represents a named registry of accounts in the domain layer
// Accounts keep insertion order; duplicates are not rejected.
type Bank struct {
	ID       uuid.UUID
	name     string
	accounts []*Account
}

// NewBank creates a bank with no name and no accounts
func NewBank() *Bank {
	return &Bank{
		ID:       uuid.New(),
		accounts: make([]*Account, 0),
	}
}

// Name returns the bank's current label
func (b *Bank) Name() string {
	return b.name
}

// SetName changes the bank's label
func (b *Bank) SetName(name string) {
	b.name = name
}

// AddAccount registers an account and points its back-reference at this bank
func (b *Bank) AddAccount(account *Account) {
	account.bank = b
	b.accounts = append(b.accounts, account)
}

// Accounts returns the registered accounts in insertion order.
// The slice is a copy; the accounts themselves are shared.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// FindAccount returns the first registered account held by owner
func (b *Bank) FindAccount(owner string) (*Account, bool) {
	for _, a := range b.accounts {
		if a.owner == owner {
			return a, true
		}
	}
	return nil, false
}

// Transfer moves amount from one account to another
// Logic:
//  1. Debit the source account
//  2. Credit the destination only if the debit succeeded
//
// A failed debit is returned as is and neither balance changes.
func (b *Bank) Transfer(from, to *Account, amount decimal.Decimal) error {
	if err := from.Debit(amount); err != nil {
		return err
	}
	to.Credit(amount)
	return nil
}
