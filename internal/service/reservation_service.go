package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/repository/specification"
	"resto-reserve-be/internal/repository/unitofwork"
	"resto-reserve-be/pkg/events"
	pktNats "resto-reserve-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IReservationService interface {
	CheckAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
	CreateReservation(ctx context.Context, userId uuid.UUID, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	GetMyReservations(ctx context.Context, userId uuid.UUID) ([]*dto.ReservationResponse, error)
	GetReservation(ctx context.Context, userId uuid.UUID, id string) (*dto.ReservationResponse, error)
	CancelReservation(ctx context.Context, userId uuid.UUID, id string) error
}

type reservationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewReservationService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IReservationService {
	return &reservationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// isDuplicateKey recognizes any unique-constraint violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// isSlotConflict narrows a duplicate-key error to the composite slot
// index. A reused caller-supplied id violates the primary key instead
// and must not be reported as "already reserved".
func isSlotConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "idx_reservations_slot")
}

func toReservationResponse(r *entity.Reservation, table *entity.DiningTable) *dto.ReservationResponse {
	res := &dto.ReservationResponse{
		Id:              r.Id,
		UserId:          r.UserId,
		TableId:         r.TableId,
		ReservationDate: r.ReservationDate,
		ReservationTime: r.ReservationTime,
		GuestCount:      r.GuestCount,
		TransactionID:   r.TransactionID,
		Paid:            r.Paid(),
		CreatedAt:       r.CreatedAt,
	}
	if table != nil {
		res.Table = toTableResponse(table)
	}
	return res
}

func (s *reservationService) CheckAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	taken, err := uow.ReservationRepository().SlotTaken(ctx, specification.BySlot{
		TableID: req.TableId,
		Date:    req.ReservationDate,
		Time:    req.ReservationTime,
	})
	if err != nil {
		s.log.Error("reservation", "availability check failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	return &dto.AvailabilityResponse{Available: !taken}, nil
}

func (s *reservationService) CreateReservation(ctx context.Context, userId uuid.UUID, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	table, err := uow.TableRepository().FindOne(ctx, specification.ByID{ID: req.TableId})
	if err != nil {
		s.log.Error("reservation", "failed to load table", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if table == nil {
		return nil, ErrNotFound
	}

	// Advisory pre-check for a friendly error. The unique index on the
	// slot is what actually decides the race.
	taken, err := uow.ReservationRepository().SlotTaken(ctx, specification.BySlot{
		TableID: req.TableId,
		Date:    req.ReservationDate,
		Time:    req.ReservationTime,
	})
	if err != nil {
		s.log.Error("reservation", "availability pre-check failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if taken {
		return nil, ErrSlotTaken
	}

	reservation := &entity.Reservation{
		Id:              req.Id,
		UserId:          userId,
		TableId:         req.TableId,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		GuestCount:      req.GuestCount,
		CreatedAt:       time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReservationRepository().Create(ctx, reservation); err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		if isDuplicateKey(err) {
			return nil, ErrReservationExists
		}
		s.log.Error("reservation", "failed to create reservation", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	notification := &entity.Notification{
		Id:     uuid.New(),
		UserId: userId,
		Message: fmt.Sprintf("Reservasi meja %s untuk tanggal %s pukul %s berhasil dibuat.",
			table.TableNumber, req.ReservationDate, req.ReservationTime),
		Status: entity.NotificationStatusUnread,
		Metadata: map[string]interface{}{
			"reservation_id": reservation.Id,
			"table_id":       req.TableId,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.log.Error("reservation", "failed to create booking notification", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	if err := uow.Commit(); err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		if isDuplicateKey(err) {
			return nil, ErrReservationExists
		}
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeReservationCreated,
			Data: map[string]interface{}{
				"reservation_id": reservation.Id,
				"user_id":        userId,
				"table_id":       req.TableId,
				"date":           req.ReservationDate,
				"time":           req.ReservationTime,
				"occurred_at":    time.Now(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish reservation created event: %v\n", err)
		}
	}

	return toReservationResponse(reservation, table), nil
}

func (s *reservationService) GetMyReservations(ctx context.Context, userId uuid.UUID) ([]*dto.ReservationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservations, tables, err := uow.ReservationRepository().FindAllWithTables(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		s.log.Error("reservation", "failed to list reservations", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	res := make([]*dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		res = append(res, toReservationResponse(r, tables[r.Id]))
	}
	return res, nil
}

func (s *reservationService) GetReservation(ctx context.Context, userId uuid.UUID, id string) (*dto.ReservationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservation, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil {
		s.log.Error("reservation", "failed to load reservation", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if reservation == nil {
		return nil, ErrNotFound
	}
	if reservation.UserId != userId {
		return nil, ErrNotOwner
	}

	table, _ := uow.TableRepository().FindOne(ctx, specification.ByID{ID: reservation.TableId})
	return toReservationResponse(reservation, table), nil
}

// CancelReservation tears down a booking. For a paid booking the refund
// snapshot, the user notification, the transaction delete and the
// reservation delete commit together or not at all.
func (s *reservationService) CancelReservation(ctx context.Context, userId uuid.UUID, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservation, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil {
		s.log.Error("reservation", "failed to load reservation for cancel", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}
	if reservation == nil {
		return ErrNotFound
	}
	if reservation.UserId != userId {
		return ErrNotOwner
	}

	// Cancellation is only defined for paid bookings. The refund
	// snapshot below is the durable record of the payment, so a
	// reservation without a settled transaction has nothing to cancel
	// against.
	if !reservation.Paid() {
		return ErrNotPaid
	}
	tx, err := uow.TransactionRepository().FindOne(ctx, specification.ByTransactionID{TransactionID: *reservation.TransactionID})
	if err != nil {
		s.log.Error("reservation", "failed to load transaction for cancel", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}
	if tx == nil {
		return ErrNotPaid
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	refund := &entity.Refund{
		Id:              uuid.New(),
		ReservationID:   reservation.Id,
		TransactionID:   tx.TransactionID,
		OrderID:         tx.OrderID,
		UserId:          userId,
		PaymentType:     tx.PaymentType,
		GrossAmount:     tx.GrossAmount,
		TransactionTime: tx.TransactionTime,
		Status:          entity.RefundStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := uow.RefundRepository().Create(ctx, refund); err != nil {
		s.log.Error("reservation", "failed to create refund snapshot", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}

	notification := &entity.Notification{
		Id:     uuid.New(),
		UserId: userId,
		Message: fmt.Sprintf("Reservasi %s dibatalkan. Pengajuan refund untuk order %s berstatus %q.",
			reservation.Id, tx.OrderID, entity.RefundStatusPending),
		Status: entity.NotificationStatusUnread,
		Metadata: map[string]interface{}{
			"reservation_id": reservation.Id,
			"order_id":       tx.OrderID,
			"refund_id":      refund.Id.String(),
		},
		CreatedAt: time.Now(),
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.log.Error("reservation", "failed to create cancellation notification", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}

	if err := uow.TransactionRepository().Delete(ctx, tx.TransactionID); err != nil {
		s.log.Error("reservation", "failed to delete transaction", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}

	if err := uow.ReservationRepository().Delete(ctx, reservation.Id); err != nil {
		s.log.Error("reservation", "failed to delete reservation", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeReservationCancelled,
			Data: map[string]interface{}{
				"reservation_id": reservation.Id,
				"user_id":        userId,
				"order_id":       tx.OrderID,
				"occurred_at":    time.Now(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish reservation cancelled event: %v\n", err)
		}
	}

	return nil
}
