package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

type repositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &repositoryFactoryImpl{db: db}
}

func (f *repositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request; the context is applied when the
	// caller invokes Begin or passes it to repository calls.
	return NewUnitOfWork(f.db)
}
