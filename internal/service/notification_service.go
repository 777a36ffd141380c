package service

import (
	"context"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/repository/specification"
	"resto-reserve-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotificationService interface {
	GetMyNotifications(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (*dto.UnreadCountResponse, error)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *notificationService) GetMyNotifications(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		s.log.Error("notification", "failed to list notifications", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	res := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, &dto.NotificationResponse{
			Id:        n.Id,
			Message:   n.Message,
			Status:    string(n.Status),
			Metadata:  n.Metadata,
			CreatedAt: n.CreatedAt,
		})
	}
	return res, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.NotificationRepository().MarkRead(ctx, id, userId)
	if err != nil {
		s.log.Error("notification", "failed to mark notification read", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *notificationService) CountUnread(ctx context.Context, userId uuid.UUID) (*dto.UnreadCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.NotificationRepository().CountUnread(ctx, userId)
	if err != nil {
		s.log.Error("notification", "failed to count unread", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
