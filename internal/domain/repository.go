package domain

import (
	"context"

	"github.com/google/uuid"
)

// BankRepository defines the interface for bank storage operations
type BankRepository interface {
	// GetByID retrieves a bank by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Bank, error)

	// Create registers a new bank
	Create(ctx context.Context, bank *Bank) error

	// List retrieves all banks in creation order
	List(ctx context.Context) ([]*Bank, error)
}
