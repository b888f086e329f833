package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"
)

// Result carries the outcome of an asynchronous lookup.
type Result[T any] struct {
	Value T
	Err   error
}

// Set is the collection of one entity type inside a unit of work.
type Set[T any] struct {
	uow *UnitOfWork
	m   Mapping[T]
}

func NewSet[T any](uow *UnitOfWork, m Mapping[T]) *Set[T] {
	return &Set[T]{uow: uow, m: m}
}

// List applies the filter, then the sort, then the page. It issues one count
// query and, when the page is in range, one page query.
func (s *Set[T]) List(ctx context.Context, params query.Parameters) (paging.Page[*T], error) {
	p := params.Params.Normalize(s.uow.defaultPageSize, s.uow.maxPageSize)

	where, args := query.ParseFilter(params.Filters, s.m.Fields).Where()
	orderBy := query.ParseSort(params.SortOrder, s.m.Fields).OrderBy(s.m.KeyColumn())

	whereSQL := ""
	if where != "" {
		whereSQL = " WHERE " + where
	}

	var total int
	countSQL := "SELECT COUNT(*) FROM " + s.m.from() + whereSQL
	if err := s.uow.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return paging.Page[*T]{}, fmt.Errorf("count %s: %w", s.m.Table, err)
	}

	if total == 0 || p.Skip() >= total {
		return paging.New([]*T{}, total, p), nil
	}

	pageSQL := "SELECT " + s.m.selectList() + " FROM " + s.m.from() + whereSQL +
		" ORDER BY " + orderBy + " LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), p.PageSize, p.Skip())

	rows, err := s.uow.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return paging.Page[*T]{}, fmt.Errorf("list %s: %w", s.m.Table, err)
	}
	defer rows.Close()

	items := make([]*T, 0, p.PageSize)
	for rows.Next() {
		e, err := s.m.Scan(rows)
		if err != nil {
			return paging.Page[*T]{}, fmt.Errorf("scan %s: %w", s.m.Table, err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return paging.Page[*T]{}, fmt.Errorf("iterate %s: %w", s.m.Table, err)
	}

	return paging.New(items, total, p), nil
}

// GetByID returns the entity with the given id, or nil when there is none.
// The same instance is returned for repeated lookups within the unit of work,
// and it is tracked for Save.
func (s *Set[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if cached, ok := s.uow.lookup(s.m.Table, id); ok {
		return cached.(*T), nil
	}

	q := "SELECT " + s.m.selectList() + " FROM " + s.m.from() + " WHERE " + s.m.KeyColumn() + " = ? LIMIT 1"
	e, err := s.m.Scan(s.uow.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", s.m.Table, id, err)
	}

	track(s.uow, s.m, e)
	return e, nil
}

// GetByIDAsync runs GetByID in its own goroutine. The channel receives
// exactly one result and is then closed.
func (s *Set[T]) GetByIDAsync(ctx context.Context, id int64) <-chan Result[*T] {
	ch := make(chan Result[*T], 1)
	go func() {
		defer close(ch)
		e, err := s.GetByID(ctx, id)
		ch <- Result[*T]{Value: e, Err: err}
	}()
	return ch
}

// Add stages e for insertion; its id is assigned by Save.
func (s *Set[T]) Add(e *T) error {
	if e == nil {
		return domain.InvalidArgumentError{Name: s.m.Table}
	}
	stageInsert(s.uow, s.m, e)
	return nil
}

// Delete stages e for removal.
func (s *Set[T]) Delete(e *T) error {
	if e == nil {
		return domain.InvalidArgumentError{Name: s.m.Table}
	}
	stageDelete(s.uow, s.m, e)
	return nil
}

// Save commits every change staged in the unit of work, not only this set's.
func (s *Set[T]) Save(ctx context.Context) (bool, error) {
	return s.uow.Save(ctx)
}
