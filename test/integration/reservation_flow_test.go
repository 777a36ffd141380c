package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/repository/specification"
	"resto-reserve-be/internal/repository/unitofwork"
	"resto-reserve-be/internal/service"
	"resto-reserve-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return gormDB
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:           uuid.New(),
		Username:     "it-user-" + uuid.New().String()[:8],
		Email:        "it-" + uuid.New().String() + "@example.com",
		PasswordHash: "not-a-real-hash",
		FullName:     "Integration Test User",
		Role:         entity.UserRoleMember,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func createTestTable(t *testing.T, uow unitofwork.UnitOfWork) *entity.DiningTable {
	t.Helper()
	table := &entity.DiningTable{
		Id:          uuid.New(),
		TableNumber: "IT-" + uuid.New().String()[:8],
		Capacity:    4,
		Location:    "integration",
	}
	require.NoError(t, uow.TableRepository().Create(context.Background(), table))
	return table
}

func TestReservationSlotUniqueness(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	table := createTestTable(t, uow)

	date := "2030-05-01"
	slot := "19:00"

	first := &entity.Reservation{
		Id:              "it-resv-" + uuid.New().String(),
		UserId:          user.Id,
		TableId:         table.Id,
		ReservationDate: date,
		ReservationTime: slot,
		GuestCount:      2,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, uow.ReservationRepository().Create(ctx, first))

	taken, err := uow.ReservationRepository().SlotTaken(ctx, specification.BySlot{
		TableID: table.Id,
		Date:    date,
		Time:    slot,
	})
	require.NoError(t, err)
	assert.True(t, taken)

	// The composite unique index rejects the duplicate regardless of the
	// advisory check.
	duplicate := &entity.Reservation{
		Id:              "it-resv-" + uuid.New().String(),
		UserId:          user.Id,
		TableId:         table.Id,
		ReservationDate: date,
		ReservationTime: slot,
		GuestCount:      4,
		CreatedAt:       time.Now(),
	}
	err = uow.ReservationRepository().Create(ctx, duplicate)
	assert.Error(t, err)

	// A different slot on the same table is fine.
	other := &entity.Reservation{
		Id:              "it-resv-" + uuid.New().String(),
		UserId:          user.Id,
		TableId:         table.Id,
		ReservationDate: date,
		ReservationTime: "20:00",
		GuestCount:      2,
		CreatedAt:       time.Now(),
	}
	assert.NoError(t, uow.ReservationRepository().Create(ctx, other))
}

func TestReservationBookingRace(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	table := createTestTable(t, uow)

	date := "2030-06-15"
	slot := "18:30"

	const contenders = 8
	errs := make(chan error, contenders)

	for i := 0; i < contenders; i++ {
		go func(n int) {
			r := &entity.Reservation{
				Id:              fmt.Sprintf("it-race-%s-%d", uuid.New().String()[:8], n),
				UserId:          user.Id,
				TableId:         table.Id,
				ReservationDate: date,
				ReservationTime: slot,
				GuestCount:      2,
				CreatedAt:       time.Now(),
			}
			errs <- factory.NewUnitOfWork(ctx).ReservationRepository().Create(ctx, r)
		}(i)
	}

	winners := 0
	for i := 0; i < contenders; i++ {
		if err := <-errs; err == nil {
			winners++
		}
	}

	// Exactly one insert wins the slot.
	assert.Equal(t, 1, winners)

	count, err := uow.ReservationRepository().Count(ctx,
		specification.BySlot{TableID: table.Id, Date: date, Time: slot},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWebhookUpsertIsIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	table := createTestTable(t, uow)

	reservation := &entity.Reservation{
		Id:              "it-resv-" + uuid.New().String(),
		UserId:          user.Id,
		TableId:         table.Id,
		ReservationDate: "2030-07-01",
		ReservationTime: "19:30",
		GuestCount:      2,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, uow.ReservationRepository().Create(ctx, reservation))

	txId := "it-tx-" + uuid.New().String()
	orderId := "it-order-" + uuid.New().String()

	tx := &entity.Transaction{
		TransactionID:     txId,
		OrderID:           orderId,
		ReservationID:     reservation.Id,
		TransactionStatus: "pending",
		PaymentType:       "qris",
		GrossAmount:       "25000.00",
		TransactionTime:   "2030-07-01 10:00:00",
	}
	require.NoError(t, uow.TransactionRepository().Upsert(ctx, tx))

	// Replay with the settled status: same row, status refreshed.
	tx.TransactionStatus = "settlement"
	require.NoError(t, uow.TransactionRepository().Upsert(ctx, tx))
	require.NoError(t, uow.TransactionRepository().Upsert(ctx, tx))

	stored, err := uow.TransactionRepository().FindOne(ctx, specification.ByTransactionID{TransactionID: txId})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "settlement", stored.TransactionStatus)
	assert.True(t, stored.Settled())

	all, err := uow.TransactionRepository().FindAll(ctx, specification.ByOrderID{OrderID: orderId})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Link and verify the paid flag round-trips.
	require.NoError(t, uow.ReservationRepository().LinkTransaction(ctx, reservation.Id, txId))
	linked, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: reservation.Id})
	require.NoError(t, err)
	require.NotNil(t, linked)
	assert.True(t, linked.Paid())
}

func TestProfileUpdateIsPartialAndConflictChecked(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	uow := factory.NewUnitOfWork(ctx)

	alice := createTestUser(t, uow)
	bob := createTestUser(t, uow)

	svc := service.NewUserService(factory, logger.NewZapLogger(t.TempDir()+"/test.log", false))

	// Taking another user's username or email is rejected.
	err := svc.UpdateProfile(ctx, bob.Id, &dto.UpdateProfileRequest{Username: alice.Username})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
	err = svc.UpdateProfile(ctx, bob.Id, &dto.UpdateProfileRequest{Email: alice.Email})
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	// A name-only update leaves the other fields alone.
	require.NoError(t, svc.UpdateProfile(ctx, bob.Id, &dto.UpdateProfileRequest{FullName: "Renamed Tester"}))
	updated, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: bob.Id})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed Tester", updated.FullName)
	assert.Equal(t, bob.Username, updated.Username)
	assert.Equal(t, bob.Email, updated.Email)
}

func TestCancellationRejectsUnpaidReservation(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	table := createTestTable(t, uow)

	reservation := &entity.Reservation{
		Id:              "it-resv-" + uuid.New().String(),
		UserId:          user.Id,
		TableId:         table.Id,
		ReservationDate: "2030-07-15",
		ReservationTime: "18:00",
		GuestCount:      2,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, uow.ReservationRepository().Create(ctx, reservation))

	svc := service.NewReservationService(factory, nil, logger.NewZapLogger(t.TempDir()+"/test.log", false))

	err := svc.CancelReservation(ctx, user.Id, reservation.Id)
	assert.ErrorIs(t, err, service.ErrNotPaid)

	// The unpaid booking stays put and no refund snapshot appears.
	kept, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: reservation.Id})
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.False(t, kept.Paid())

	refunds, err := uow.RefundRepository().FindAll(ctx, specification.UserOwnedBy{UserID: user.Id})
	require.NoError(t, err)
	assert.Empty(t, refunds)
}

func TestCancellationCreatesRefundAtomically(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	table := createTestTable(t, uow)

	reservation := &entity.Reservation{
		Id:              "it-resv-" + uuid.New().String(),
		UserId:          user.Id,
		TableId:         table.Id,
		ReservationDate: "2030-08-01",
		ReservationTime: "19:00",
		GuestCount:      2,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, uow.ReservationRepository().Create(ctx, reservation))

	txId := "it-tx-" + uuid.New().String()
	tx := &entity.Transaction{
		TransactionID:     txId,
		OrderID:           "it-order-" + uuid.New().String(),
		ReservationID:     reservation.Id,
		TransactionStatus: "settlement",
		PaymentType:       "gopay",
		GrossAmount:       "25000.00",
		TransactionTime:   "2030-08-01 09:00:00",
	}
	require.NoError(t, uow.TransactionRepository().Upsert(ctx, tx))
	require.NoError(t, uow.ReservationRepository().LinkTransaction(ctx, reservation.Id, txId))

	// Mirror the cancellation transaction: refund + notification +
	// transaction delete + reservation delete, one commit.
	cancelUow := factory.NewUnitOfWork(ctx)
	require.NoError(t, cancelUow.Begin(ctx))

	refund := &entity.Refund{
		Id:              uuid.New(),
		ReservationID:   reservation.Id,
		TransactionID:   tx.TransactionID,
		OrderID:         tx.OrderID,
		UserId:          user.Id,
		PaymentType:     tx.PaymentType,
		GrossAmount:     tx.GrossAmount,
		TransactionTime: tx.TransactionTime,
		Status:          entity.RefundStatusPending,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, cancelUow.RefundRepository().Create(ctx, refund))
	require.NoError(t, cancelUow.NotificationRepository().Create(ctx, &entity.Notification{
		Id:        uuid.New(),
		UserId:    user.Id,
		Message:   "Reservasi dibatalkan",
		Status:    entity.NotificationStatusUnread,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, cancelUow.TransactionRepository().Delete(ctx, txId))
	require.NoError(t, cancelUow.ReservationRepository().Delete(ctx, reservation.Id))
	require.NoError(t, cancelUow.Commit())

	// Reservation and transaction rows are gone, refund survives.
	gone, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: reservation.Id})
	require.NoError(t, err)
	assert.Nil(t, gone)

	goneTx, err := uow.TransactionRepository().FindOne(ctx, specification.ByTransactionID{TransactionID: txId})
	require.NoError(t, err)
	assert.Nil(t, goneTx)

	stored, err := uow.RefundRepository().FindOne(ctx, specification.ByID{ID: refund.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RefundStatusPending, stored.Status)
	assert.Equal(t, "25000.00", stored.GrossAmount)

	unread, err := uow.NotificationRepository().CountUnread(ctx, user.Id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, unread, int64(1))
}

func TestRefundDecisionIsOnceOnly(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user := createTestUser(t, uow)

	refund := &entity.Refund{
		Id:              uuid.New(),
		ReservationID:   "it-resv-" + uuid.New().String(),
		TransactionID:   "it-tx-" + uuid.New().String(),
		OrderID:         "it-order-" + uuid.New().String(),
		UserId:          user.Id,
		PaymentType:     "bank_transfer",
		GrossAmount:     "25000.00",
		TransactionTime: "2030-09-01 12:00:00",
		Status:          entity.RefundStatusPending,
		CreatedAt:       time.Now(),
	}
	require.NoError(t, uow.RefundRepository().Create(ctx, refund))

	now := time.Now()
	decided := *refund
	require.NoError(t, decided.Decide(entity.RefundStatusAccepted, now))

	affected, err := uow.RefundRepository().UpdateStatusIfPending(ctx, refund.Id, &decided)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Second decision targets a row no longer pending: zero rows.
	rejected := *refund
	require.NoError(t, rejected.Decide(entity.RefundStatusRejected, now))
	affected, err = uow.RefundRepository().UpdateStatusIfPending(ctx, refund.Id, &rejected)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	stored, err := uow.RefundRepository().FindOne(ctx, specification.ByID{ID: refund.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RefundStatusAccepted, stored.Status)
	assert.NotNil(t, stored.ProcessedAt)
}

func TestReviewRatingBounds(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user := createTestUser(t, uow)

	for _, rating := range []int{entity.ReviewRatingMin, entity.ReviewRatingMax} {
		review := &entity.Review{
			Id:        uuid.New(),
			UserId:    user.Id,
			Rating:    rating,
			Comment:   "integration review",
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.ReviewRepository().Create(ctx, review))
	}

	reviews, err := uow.ReviewRepository().FindAllWithAuthors(ctx,
		specification.UserOwnedBy{UserID: user.Id},
	)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, r := range reviews {
		assert.Equal(t, user.Username, r.AuthorName)
	}
}
