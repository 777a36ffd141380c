package contract

import (
	"context"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RefundRepository interface {
	Create(ctx context.Context, refund *entity.Refund) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Refund, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Refund, error)
	Update(ctx context.Context, refund *entity.Refund) error

	// UpdateStatusIfPending updates the decision fields only when the row
	// is still in the initial state; returns the number of rows changed so
	// the caller can distinguish a lost race from success.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, refund *entity.Refund) (int64, error)
}
