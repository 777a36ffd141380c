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

type reservationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReservationMapper
}

func NewReservationRepository(db *gorm.DB) contract.ReservationRepository {
	return &reservationRepositoryImpl{
		db:     db,
		mapper: mapper.NewReservationMapper(),
	}
}

func (r *reservationRepositoryImpl) Create(ctx context.Context, reservation *entity.Reservation) error {
	m := r.mapper.ToModel(reservation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reservation = *r.mapper.ToEntity(m)
	return nil
}

func (r *reservationRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reservation{}).Error
}

func (r *reservationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reservation, error) {
	var m model.Reservation
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *reservationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, error) {
	var ms []*model.Reservation
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *reservationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Reservation{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reservationRepositoryImpl) SlotTaken(ctx context.Context, spec specification.BySlot) (bool, error) {
	var count int64
	query := spec.Apply(r.db.WithContext(ctx).Model(&model.Reservation{}))
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reservationRepositoryImpl) LinkTransaction(ctx context.Context, reservationId, transactionId string) error {
	return r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ?", reservationId).
		Update("transaction_id", transactionId).Error
}

// FindAllWithTables returns reservations plus a lookup of the referenced
// tables, using one explicit join instead of per-row lazy loads.
func (r *reservationRepositoryImpl) FindAllWithTables(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, map[string]*entity.DiningTable, error) {
	var results []struct {
		model.Reservation
		TableNumber string `gorm:"column:table_number"`
		Capacity    int    `gorm:"column:capacity"`
		Location    string `gorm:"column:location"`
	}

	query := r.db.WithContext(ctx).Table("reservations").
		Select("reservations.*, dining_tables.table_number, dining_tables.capacity, dining_tables.location").
		Joins("JOIN dining_tables ON dining_tables.id = reservations.table_id")
	query = applySpecifications(query, specs)

	if err := query.Scan(&results).Error; err != nil {
		return nil, nil, err
	}

	tables := make(map[string]*entity.DiningTable, len(results))
	reservations := make([]*entity.Reservation, len(results))
	for i := range results {
		m := &results[i]
		reservations[i] = r.mapper.ToEntity(&m.Reservation)
		tables[m.Id] = &entity.DiningTable{
			Id:          m.TableId,
			TableNumber: m.TableNumber,
			Capacity:    m.Capacity,
			Location:    m.Location,
		}
	}
	return reservations, tables, nil
}
