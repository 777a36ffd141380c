package mapper

import (
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/model"
)

type ReservationMapper struct{}

func NewReservationMapper() *ReservationMapper {
	return &ReservationMapper{}
}

func (m *ReservationMapper) ToEntity(r *model.Reservation) *entity.Reservation {
	if r == nil {
		return nil
	}
	return &entity.Reservation{
		Id:              r.Id,
		UserId:          r.UserId,
		TableId:         r.TableId,
		ReservationDate: r.ReservationDate,
		ReservationTime: r.ReservationTime,
		GuestCount:      r.GuestCount,
		TransactionID:   r.TransactionID,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *ReservationMapper) ToModel(r *entity.Reservation) *model.Reservation {
	if r == nil {
		return nil
	}
	return &model.Reservation{
		Id:              r.Id,
		UserId:          r.UserId,
		TableId:         r.TableId,
		ReservationDate: r.ReservationDate,
		ReservationTime: r.ReservationTime,
		GuestCount:      r.GuestCount,
		TransactionID:   r.TransactionID,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *ReservationMapper) ToEntities(rs []*model.Reservation) []*entity.Reservation {
	entities := make([]*entity.Reservation, len(rs))
	for i, r := range rs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

type TableMapper struct{}

func NewTableMapper() *TableMapper {
	return &TableMapper{}
}

func (m *TableMapper) ToEntity(t *model.DiningTable) *entity.DiningTable {
	if t == nil {
		return nil
	}
	return &entity.DiningTable{
		Id:          t.Id,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Location:    t.Location,
	}
}

func (m *TableMapper) ToEntities(ts []*model.DiningTable) []*entity.DiningTable {
	entities := make([]*entity.DiningTable, len(ts))
	for i, t := range ts {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
