package service

import (
	"context"
	"fmt"
	"time"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/repository/specification"
	"resto-reserve-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReviewService interface {
	CreateReview(ctx context.Context, userId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReviews(ctx context.Context) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IReviewService {
	return &reviewService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < entity.ReviewRatingMin || req.Rating > entity.ReviewRatingMax {
		return nil, fmt.Errorf("rating must be between %d and %d", entity.ReviewRatingMin, entity.ReviewRatingMax)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	review := &entity.Review{
		Id:        uuid.New(),
		UserId:    userId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := uow.ReviewRepository().Create(ctx, review); err != nil {
		s.log.Error("review", "failed to create review", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	return &dto.ReviewResponse{
		Id:        review.Id,
		UserId:    review.UserId,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) GetReviews(ctx context.Context) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAllWithAuthors(ctx,
		specification.OrderBy{Field: "reviews.created_at", Desc: true},
	)
	if err != nil {
		s.log.Error("review", "failed to list reviews", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	res := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		res = append(res, &dto.ReviewResponse{
			Id:         r.Id,
			UserId:     r.UserId,
			AuthorName: r.AuthorName,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		})
	}
	return res, nil
}
