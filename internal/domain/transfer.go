package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferReceipt records a completed transfer between two accounts of a bank
type TransferReceipt struct {
	ID          uuid.UUID
	BankID      uuid.UUID
	FromOwner   string
	ToOwner     string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}
