package contract

import (
	"context"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/repository/specification"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reservation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SlotTaken is the advisory availability predicate over one
	// (table, date, time) slot.
	SlotTaken(ctx context.Context, spec specification.BySlot) (bool, error)

	// LinkTransaction sets reservation.transaction_id.
	LinkTransaction(ctx context.Context, reservationId, transactionId string) error

	// FindAllWithTables performs the explicit join to table info.
	FindAllWithTables(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, map[string]*entity.DiningTable, error)
}
