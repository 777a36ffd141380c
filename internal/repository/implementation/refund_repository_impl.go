package implementation

import (
	"context"
	"errors"

	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/mapper"
	"resto-reserve-be/internal/model"
	"resto-reserve-be/internal/repository/contract"
	"resto-reserve-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type refundRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RefundMapper
}

func NewRefundRepository(db *gorm.DB) contract.RefundRepository {
	return &refundRepositoryImpl{
		db:     db,
		mapper: mapper.NewRefundMapper(),
	}
}

func (r *refundRepositoryImpl) Create(ctx context.Context, refund *entity.Refund) error {
	m := r.mapper.ToModel(refund)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*refund = *r.mapper.ToEntity(m)
	return nil
}

func (r *refundRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Refund, error) {
	var m model.Refund
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *refundRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Refund, error) {
	var ms []*model.Refund
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *refundRepositoryImpl) Update(ctx context.Context, refund *entity.Refund) error {
	return r.db.WithContext(ctx).Model(&model.Refund{}).
		Where("id = ?", refund.Id).
		Updates(map[string]interface{}{
			"status":       string(refund.Status),
			"processed_at": refund.ProcessedAt,
		}).Error
}

// UpdateStatusIfPending is the guarded write behind the once-only refund
// decision. The WHERE clause re-checks the initial state so two
// concurrent operators cannot both win.
func (r *refundRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, refund *entity.Refund) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Refund{}).
		Where("id = ? AND status = ?", id, string(entity.RefundStatusPending)).
		Updates(map[string]interface{}{
			"status":       string(refund.Status),
			"processed_at": refund.ProcessedAt,
		})
	return res.RowsAffected, res.Error
}
