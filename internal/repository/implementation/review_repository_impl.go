package implementation

import (
	"context"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/mapper"
	"resto-reserve-be/internal/model"
	"resto-reserve-be/internal/repository/contract"
	"resto-reserve-be/internal/repository/specification"

	"gorm.io/gorm"
)

type reviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &reviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *reviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.Id = m.Id
	return nil
}

func (r *reviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var ms []*model.Review
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	reviews := make([]*entity.Review, len(ms))
	for i, m := range ms {
		reviews[i] = r.mapper.ToEntity(m)
	}
	return reviews, nil
}

func (r *reviewRepositoryImpl) FindAllWithAuthors(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var results []struct {
		model.Review
		AuthorName string `gorm:"column:author_name"`
	}

	query := r.db.WithContext(ctx).Table("reviews").
		Select("reviews.*, users.username as author_name").
		Joins("JOIN users ON users.id = reviews.user_id")
	query = applySpecifications(query, specs)

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(results))
	for i := range results {
		rv := r.mapper.ToEntity(&results[i].Review)
		rv.AuthorName = results[i].AuthorName
		reviews[i] = rv
	}
	return reviews, nil
}
