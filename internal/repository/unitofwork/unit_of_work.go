package unitofwork

import (
	"context"

	"resto-reserve-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TableRepository() contract.TableRepository
	ReservationRepository() contract.ReservationRepository
	TransactionRepository() contract.TransactionRepository
	RefundRepository() contract.RefundRepository
	NotificationRepository() contract.NotificationRepository
	ReviewRepository() contract.ReviewRepository
}
