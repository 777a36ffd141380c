package mapper

import (
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		TransactionID:     t.TransactionID,
		OrderID:           t.OrderID,
		ReservationID:     t.ReservationID,
		TransactionStatus: t.TransactionStatus,
		PaymentType:       t.PaymentType,
		GrossAmount:       t.GrossAmount,
		TransactionTime:   t.TransactionTime,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		TransactionID:     t.TransactionID,
		OrderID:           t.OrderID,
		ReservationID:     t.ReservationID,
		TransactionStatus: t.TransactionStatus,
		PaymentType:       t.PaymentType,
		GrossAmount:       t.GrossAmount,
		TransactionTime:   t.TransactionTime,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type RefundMapper struct{}

func NewRefundMapper() *RefundMapper {
	return &RefundMapper{}
}

func (m *RefundMapper) ToEntity(r *model.Refund) *entity.Refund {
	if r == nil {
		return nil
	}
	return &entity.Refund{
		Id:              r.Id,
		ReservationID:   r.ReservationID,
		TransactionID:   r.TransactionID,
		OrderID:         r.OrderID,
		UserId:          r.UserId,
		PaymentType:     r.PaymentType,
		GrossAmount:     r.GrossAmount,
		TransactionTime: r.TransactionTime,
		Status:          entity.RefundStatus(r.Status),
		ProcessedAt:     r.ProcessedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *RefundMapper) ToModel(r *entity.Refund) *model.Refund {
	if r == nil {
		return nil
	}
	return &model.Refund{
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

func (m *RefundMapper) ToEntities(rs []*model.Refund) []*entity.Refund {
	entities := make([]*entity.Refund, len(rs))
	for i, r := range rs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
