package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segundo/bank/internal/domain"
	"github.com/shopspring/decimal"
)

// TransferInput represents the input for a transfer between two owners' accounts
type TransferInput struct {
	BankID      uuid.UUID
	FromOwner   string
	ToOwner     string
	Amount      decimal.Decimal
	Description string
}

// TransferService handles transfers between accounts registered in a bank
type TransferService struct {
	BankRepo domain.BankRepository
}

// NewTransferService creates a new TransferService instance
func NewTransferService(bankRepo domain.BankRepository) *TransferService {
	return &TransferService{
		BankRepo: bankRepo,
	}
}

// Transfer moves money between two accounts of the same bank, addressed by owner
// Logic:
//  1. Reject non-positive amounts
//  2. Fetch the bank
//  3. Resolve source and destination accounts by owner
//  4. Bank.Transfer (debit, then credit)
//  5. Return a receipt
//
// domain.ErrInsufficientFunds is returned unwrapped.
func (s *TransferService) Transfer(ctx context.Context, input TransferInput) (*domain.TransferReceipt, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("transfer amount must be positive")
	}

	bank, err := s.BankRepo.GetByID(ctx, input.BankID)
	if err != nil {
		return nil, err
	}

	from, ok := bank.FindAccount(input.FromOwner)
	if !ok {
		return nil, fmt.Errorf("source account %q: %w", input.FromOwner, domain.ErrAccountNotFound)
	}

	to, ok := bank.FindAccount(input.ToOwner)
	if !ok {
		return nil, fmt.Errorf("destination account %q: %w", input.ToOwner, domain.ErrAccountNotFound)
	}

	if err := bank.Transfer(from, to, input.Amount); err != nil {
		return nil, err
	}

	return &domain.TransferReceipt{
		ID:          uuid.New(),
		BankID:      bank.ID,
		FromOwner:   from.Owner(),
		ToOwner:     to.Owner(),
		Amount:      input.Amount,
		Description: input.Description,
		Date:        time.Now(),
	}, nil
}
