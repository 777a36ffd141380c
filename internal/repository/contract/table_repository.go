package contract

import (
	"context"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/repository/specification"
)

type TableRepository interface {
	Create(ctx context.Context, table *entity.DiningTable) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiningTable, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiningTable, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
