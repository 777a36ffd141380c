package contract

import (
	"context"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/repository/specification"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error)

	// FindAllWithAuthors joins reviews with the author's display name.
	FindAllWithAuthors(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error)
}
