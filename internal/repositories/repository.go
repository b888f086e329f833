// Package repositories exposes one repository per entity over a shared unit
// of work. Reads push filtering, sorting and paging into SQL; writes are staged
// until Save.
package repositories

import (
	"context"

	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"
)

// Repository is the operation set every entity repository offers.
type Repository[T any] interface {
	List(ctx context.Context, params query.Parameters) (paging.Page[*T], error)
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByIDAsync(ctx context.Context, id int64) <-chan store.Result[*T]
	Add(e *T) error
	Delete(e *T) error
	Update(e *T)
	Save(ctx context.Context) (bool, error)
}

// Repositories bundles the five entity repositories of one request. They
// share a unit of work, so Save on any of them commits all staged changes.
type Repositories struct {
	UOW          *store.UnitOfWork
	Customers    CustomerRepository
	Products     ProductRepository
	Salespersons SalespersonRepository
	Sales        SaleRepository
	Discounts    DiscountRepository
}

func New(uow *store.UnitOfWork) Repositories {
	return Repositories{
		UOW:          uow,
		Customers:    NewCustomerRepository(uow),
		Products:     NewProductRepository(uow),
		Salespersons: NewSalespersonRepository(uow),
		Sales:        NewSaleRepository(uow),
		Discounts:    NewDiscountRepository(uow),
	}
}
