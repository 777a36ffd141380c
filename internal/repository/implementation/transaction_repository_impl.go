package implementation

import (
	"context"
	"errors"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/mapper"
	"resto-reserve-be/internal/model"
	"resto-reserve-be/internal/repository/contract"
	"resto-reserve-be/internal/repository/specification"

	"gorm.io/gorm"
)

type transactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &transactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *transactionRepositoryImpl) Upsert(ctx context.Context, tx *entity.Transaction) error {
	m := r.mapper.ToModel(tx)
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO transactions (transaction_id, order_id, reservation_id, transaction_status, payment_type, gross_amount, transaction_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
		ON CONFLICT (transaction_id)
		DO UPDATE SET transaction_status = EXCLUDED.transaction_status,
		              payment_type = EXCLUDED.payment_type,
		              transaction_time = EXCLUDED.transaction_time,
		              updated_at = NOW()
	`, m.TransactionID, m.OrderID, m.ReservationID, m.TransactionStatus, m.PaymentType, m.GrossAmount, m.TransactionTime).Error
}

func (r *transactionRepositoryImpl) Delete(ctx context.Context, transactionId string) error {
	return r.db.WithContext(ctx).Where("transaction_id = ?", transactionId).Delete(&model.Transaction{}).Error
}

func (r *transactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	var m model.Transaction
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *transactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var ms []*model.Transaction
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	txs := make([]*entity.Transaction, len(ms))
	for i, m := range ms {
		txs[i] = r.mapper.ToEntity(m)
	}
	return txs, nil
}
