package bootstrap

import (
	"log"

	"resto-reserve-be/internal/config"
	"resto-reserve-be/internal/controller"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/pkg/mailer"
	"resto-reserve-be/internal/repository/unitofwork"
	"resto-reserve-be/internal/service"
	"resto-reserve-be/pkg/emotion"

	pktNats "resto-reserve-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	TableController        controller.ITableController
	ReservationController  controller.IReservationController
	PaymentController      controller.IPaymentController
	RefundController       controller.IRefundController
	ReviewController       controller.IReviewController
	NotificationController controller.INotificationController
	EmotionController      controller.IEmotionController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// NATS (best-effort: the booking flow works without the bus)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	emotionClient := emotion.NewClient(cfg.Emotion.ServiceURL)

	// Services
	authService := service.NewAuthService(uowFactory, emailService, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	tableService := service.NewTableService(uowFactory, sysLogger)
	reservationService := service.NewReservationService(uowFactory, natsPub, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, natsPub, emailService, cfg.Booking.FeeAmount, sysLogger)
	refundService := service.NewRefundService(uowFactory, emailService, natsPub, sysLogger)
	reviewService := service.NewReviewService(uowFactory, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, sysLogger)
	emotionService := service.NewEmotionService(emotionClient, sysLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		TableController:        controller.NewTableController(tableService),
		ReservationController:  controller.NewReservationController(reservationService),
		PaymentController:      controller.NewPaymentController(paymentService),
		RefundController:       controller.NewRefundController(refundService),
		ReviewController:       controller.NewReviewController(reviewService),
		NotificationController: controller.NewNotificationController(notificationService),
		EmotionController:      controller.NewEmotionController(emotionService),
		Logger:                 sysLogger,
	}
}
