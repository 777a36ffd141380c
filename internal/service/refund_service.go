package service

import (
	"context"
	"fmt"
	"time"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/pkg/mailer"
	"resto-reserve-be/internal/repository/specification"
	"resto-reserve-be/internal/repository/unitofwork"
	"resto-reserve-be/pkg/events"
	pktNats "resto-reserve-be/pkg/nats"

	"github.com/google/uuid"
)

type IRefundService interface {
	GetRefunds(ctx context.Context) ([]*dto.RefundResponse, error)
	GetMyRefunds(ctx context.Context, userId uuid.UUID) ([]*dto.RefundResponse, error)
	DecideRefund(ctx context.Context, refundId uuid.UUID, req *dto.RefundDecisionRequest) (*dto.RefundResponse, error)
}

type refundService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewRefundService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher, log logger.ILogger) IRefundService {
	return &refundService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func toRefundResponse(r *entity.Refund) *dto.RefundResponse {
	return &dto.RefundResponse{
		Id:              r.Id,
		ReservationID:   r.ReservationID,
		TransactionID:   r.TransactionID,
		OrderID:         r.OrderID,
		UserId:          r.UserId,
		PaymentType:     r.PaymentType,
		GrossAmount:     r.GrossAmount,
		TransactionTime: r.TransactionTime,
		Status:          string(r.Status),
		ProcessedAt:     r.ProcessedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func (s *refundService) GetRefunds(ctx context.Context) ([]*dto.RefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	refunds, err := uow.RefundRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		s.log.Error("refund", "failed to list refunds", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	res := make([]*dto.RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		res = append(res, toRefundResponse(r))
	}
	return res, nil
}

func (s *refundService) GetMyRefunds(ctx context.Context, userId uuid.UUID) ([]*dto.RefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	refunds, err := uow.RefundRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		s.log.Error("refund", "failed to list user refunds", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	res := make([]*dto.RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		res = append(res, toRefundResponse(r))
	}
	return res, nil
}

// DecideRefund applies a terminal decision. The guarded update only
// touches rows still in the initial state, so a second decision on the
// same refund loses with ErrAlreadyProcessed regardless of timing.
func (s *refundService) DecideRefund(ctx context.Context, refundId uuid.UUID, req *dto.RefundDecisionRequest) (*dto.RefundResponse, error) {
	decision, err := entity.ParseRefundDecision(req.Status)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	refund, err := uow.RefundRepository().FindOne(ctx, specification.ByID{ID: refundId})
	if err != nil {
		s.log.Error("refund", "failed to load refund", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if refund == nil {
		return nil, ErrNotFound
	}
	if refund.Status.IsTerminal() {
		return nil, ErrAlreadyProcessed
	}

	now := time.Now()
	if err := refund.Decide(decision, now); err != nil {
		return nil, ErrAlreadyProcessed
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	affected, err := uow.RefundRepository().UpdateStatusIfPending(ctx, refundId, refund)
	if err != nil {
		s.log.Error("refund", "failed to update refund status", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if affected == 0 {
		// Another operator decided first.
		return nil, ErrAlreadyProcessed
	}

	notification := &entity.Notification{
		Id:     uuid.New(),
		UserId: refund.UserId,
		Message: fmt.Sprintf("Pengajuan refund untuk order %s telah diproses. Status: %s.",
			refund.OrderID, decision),
		Status: entity.NotificationStatusUnread,
		Metadata: map[string]interface{}{
			"refund_id": refund.Id.String(),
			"order_id":  refund.OrderID,
			"status":    string(decision),
		},
		CreatedAt: now,
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.log.Error("refund", "failed to create decision notification", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Email and bus event are best-effort after commit.
	user, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: refund.UserId})
	if user != nil {
		go func(email, orderId, status string) {
			if emailErr := s.emailService.SendRefundDecision(email, orderId, status); emailErr != nil {
				fmt.Printf("Error sending refund decision email: %v\n", emailErr)
			}
		}(user.Email, refund.OrderID, string(decision))
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeRefundProcessed,
			Data: map[string]interface{}{
				"refund_id":   refund.Id,
				"order_id":    refund.OrderID,
				"user_id":     refund.UserId,
				"status":      string(decision),
				"occurred_at": now,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish refund processed event: %v\n", err)
		}
	}

	return toRefundResponse(refund), nil
}
