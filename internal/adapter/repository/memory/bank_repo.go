package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segundo/bank/internal/domain"
)

// bankRepository implements domain.BankRepository in process memory
type bankRepository struct {
	mu    sync.RWMutex
	banks map[uuid.UUID]*domain.Bank
	order []uuid.UUID
}

// NewBankRepository creates a new, empty bank repository
func NewBankRepository() domain.BankRepository {
	return &bankRepository{banks: make(map[uuid.UUID]*domain.Bank)}
}

// GetByID retrieves a bank by its ID
func (r *bankRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.banks[id]
	if !ok {
		return nil, fmt.Errorf("failed to get bank %s: %w", id, domain.ErrBankNotFound)
	}
	return bank, nil
}

// Create registers a new bank
func (r *bankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bank == nil {
		return errors.New("bank cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.banks[bank.ID]; exists {
		return fmt.Errorf("bank %s already exists", bank.ID)
	}
	r.banks[bank.ID] = bank
	r.order = append(r.order, bank.ID)
	return nil
}

// List retrieves all banks in creation order
func (r *bankRepository) List(ctx context.Context) ([]*domain.Bank, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	banks := make([]*domain.Bank, 0, len(r.order))
	for _, id := range r.order {
		banks = append(banks, r.banks[id])
	}
	return banks, nil
}
