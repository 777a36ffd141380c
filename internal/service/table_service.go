package service

import (
	"context"
	"time"

	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/entity"
	"resto-reserve-be/internal/pkg/logger"
	"resto-reserve-be/internal/repository/specification"
	"resto-reserve-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const tableListCacheKey = "tables:all"

type ITableService interface {
	CreateTable(ctx context.Context, req *dto.CreateTableRequest) (*dto.TableResponse, error)
	GetTables(ctx context.Context) ([]*dto.TableResponse, error)
	GetTable(ctx context.Context, id uuid.UUID) (*dto.TableResponse, error)
}

type tableService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	log        logger.ILogger
}

func NewTableService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITableService {
	return &tableService{
		uowFactory: uowFactory,
		// Table inventory changes rarely, a short TTL keeps reads cheap.
		cache: gocache.New(5*time.Minute, 10*time.Minute),
		log:   log,
	}
}

func toTableResponse(t *entity.DiningTable) *dto.TableResponse {
	return &dto.TableResponse{
		Id:          t.Id,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Location:    t.Location,
	}
}

func (s *tableService) CreateTable(ctx context.Context, req *dto.CreateTableRequest) (*dto.TableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	table := &entity.DiningTable{
		Id:          uuid.New(),
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    req.Location,
	}

	if err := uow.TableRepository().Create(ctx, table); err != nil {
		s.log.Error("table", "failed to create table", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	s.cache.Delete(tableListCacheKey)
	return toTableResponse(table), nil
}

func (s *tableService) GetTables(ctx context.Context) ([]*dto.TableResponse, error) {
	if cached, found := s.cache.Get(tableListCacheKey); found {
		if tables, ok := cached.([]*dto.TableResponse); ok {
			return tables, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tables, err := uow.TableRepository().FindAll(ctx, specification.OrderBy{Field: "table_number"})
	if err != nil {
		s.log.Error("table", "failed to list tables", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}

	res := make([]*dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		res = append(res, toTableResponse(t))
	}

	s.cache.Set(tableListCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *tableService) GetTable(ctx context.Context, id uuid.UUID) (*dto.TableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	table, err := uow.TableRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		s.log.Error("table", "failed to load table", map[string]interface{}{"error": err.Error()})
		return nil, ErrInternal
	}
	if table == nil {
		return nil, ErrNotFound
	}
	return toTableResponse(table), nil
}
