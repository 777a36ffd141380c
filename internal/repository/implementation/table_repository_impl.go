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

type tableRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TableMapper
}

func NewTableRepository(db *gorm.DB) contract.TableRepository {
	return &tableRepositoryImpl{
		db:     db,
		mapper: mapper.NewTableMapper(),
	}
}

func (r *tableRepositoryImpl) Create(ctx context.Context, table *entity.DiningTable) error {
	m := &model.DiningTable{
		Id:          table.Id,
		TableNumber: table.TableNumber,
		Capacity:    table.Capacity,
		Location:    table.Location,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	table.Id = m.Id
	return nil
}

func (r *tableRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiningTable, error) {
	var m model.DiningTable
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *tableRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiningTable, error) {
	var ms []*model.DiningTable
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *tableRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DiningTable{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
