package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"os"
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
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	bookingFee     int64
	log            logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, emailService mailer.IEmailService, bookingFee int64, log logger.ILogger) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		bookingFee:     bookingFee,
		log:            log,
	}
}

// midtransSignature computes the gateway's notification signature:
// SHA512(order_id + status_code + gross_amount + server_key).
func midtransSignature(orderId, statusCode, grossAmount, serverKey string) string {
	input := orderId + statusCode + grossAmount + serverKey
	return fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
}

func (s *paymentService) Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservation, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: req.ReservationId})
	if err != nil {
		s.log.Error("payment", "failed to load reservation for checkout", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if reservation == nil {
		return nil, ErrNotFound
	}
	if reservation.UserId != userId {
		return nil, ErrNotOwner
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return nil, ErrNotFound
	}

	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENVIRONMENT") == "production" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/reservations?payment=success", frontendURL)

	orderId := fmt.Sprintf("RESV-%s-%d", reservation.Id, time.Now().Unix())
	grossAmount := s.bookingFee * int64(reservation.GuestCount)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: grossAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    reservation.Id,
				Price: s.bookingFee,
				Qty:   int32(reservation.GuestCount),
				Name:  fmt.Sprintf("Booking fee table reservation %s %s", reservation.ReservationDate, reservation.ReservationTime),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		GrossAmount: grossAmount,
	}, nil
}

// HandleNotification ingests a gateway webhook. The transaction row is
// upserted keyed on transaction_id, so gateway replays of the same
// notification are benign.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		s.log.Error("payment", "MIDTRANS_SERVER_KEY not configured", nil)
		return ErrInternal
	}

	expected := midtransSignature(req.OrderID, req.StatusCode, req.GrossAmount, serverKey)
	if req.SignatureKey != expected {
		s.log.Warn("payment", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderID,
		})
		return ErrInvalidSignature
	}

	tx := &entity.Transaction{
		TransactionID:     req.TransactionID,
		OrderID:           req.OrderID,
		ReservationID:     req.ReservationID,
		TransactionStatus: req.TransactionStatus,
		PaymentType:       req.PaymentType,
		GrossAmount:       req.GrossAmount,
		TransactionTime:   req.TransactionTime,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TransactionRepository().Upsert(ctx, tx); err != nil {
		s.log.Error("payment", "failed to upsert transaction", map[string]interface{}{"error": err.Error()})
		return ErrInternal
	}

	var settledReservation *entity.Reservation
	var customerEmail, tableNumber string
	if tx.Settled() && req.ReservationID != "" {
		reservation, err := uow.ReservationRepository().FindOne(ctx, specification.ByStringID{ID: req.ReservationID})
		if err != nil {
			s.log.Error("payment", "failed to load reservation for settlement", map[string]interface{}{"error": err.Error()})
			return ErrInternal
		}
		if reservation != nil {
			if err := uow.ReservationRepository().LinkTransaction(ctx, reservation.Id, tx.TransactionID); err != nil {
				s.log.Error("payment", "failed to link transaction", map[string]interface{}{"error": err.Error()})
				return ErrInternal
			}

			notification := &entity.Notification{
				Id:     uuid.New(),
				UserId: reservation.UserId,
				Message: fmt.Sprintf("Pembayaran untuk reservasi %s berhasil (order %s).",
					reservation.Id, tx.OrderID),
				Status: entity.NotificationStatusUnread,
				Metadata: map[string]interface{}{
					"reservation_id": reservation.Id,
					"order_id":       tx.OrderID,
					"payment_type":   tx.PaymentType,
				},
				CreatedAt: time.Now(),
			}
			if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
				s.log.Error("payment", "failed to create settlement notification", map[string]interface{}{"error": err.Error()})
				return ErrInternal
			}
			if user, userErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: reservation.UserId}); userErr == nil && user != nil {
				customerEmail = user.Email
			}
			if table, tableErr := uow.TableRepository().FindOne(ctx, specification.ByID{ID: reservation.TableId}); tableErr == nil && table != nil {
				tableNumber = table.TableNumber
			}
			settledReservation = reservation
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if settledReservation != nil && customerEmail != "" {
		go func(email, resId, date, timeSlot, table string) {
			if emailErr := s.emailService.SendReservationConfirmation(email, resId, date, timeSlot, table); emailErr != nil {
				fmt.Printf("[WARN] Failed to send confirmation email: %v\n", emailErr)
			}
		}(customerEmail, settledReservation.Id, settledReservation.ReservationDate, settledReservation.ReservationTime, tableNumber)
	}

	if settledReservation != nil && s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypePaymentSettled,
			Data: map[string]interface{}{
				"reservation_id": settledReservation.Id,
				"order_id":       tx.OrderID,
				"user_id":        settledReservation.UserId,
				"gross_amount":   tx.GrossAmount,
				"occurred_at":    time.Now(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish payment settled event: %v\n", err)
		}
	}

	return nil
}
