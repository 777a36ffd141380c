package contract

import (
	"context"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/repository/specification"
)

type TransactionRepository interface {
	// Upsert inserts the transaction or, on a duplicate transaction_id,
	// refreshes the mutable status fields. Gateway webhook replays are
	// benign under this contract.
	Upsert(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, transactionId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
}
