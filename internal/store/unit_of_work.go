package store

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sync"

	"bespokedbikes/internal/paging"
)

// UnitOfWork collects staged changes for one request and commits them in a
// single transaction on Save. Entities loaded by id are tracked: mutating a
// tracked entity in place is enough for Save to write it back.
type UnitOfWork struct {
	db *sql.DB

	defaultPageSize int
	maxPageSize     int

	mu       sync.Mutex
	inserts  []*pendingWrite
	deletes  []*pendingWrite
	tracked  map[trackKey]*trackedEntity
	sequence []trackKey
}

type Option func(*UnitOfWork)

// WithPageSize overrides the paging defaults used by List.
func WithPageSize(defaultSize, maxSize int) Option {
	return func(u *UnitOfWork) {
		if defaultSize > 0 {
			u.defaultPageSize = defaultSize
		}
		if maxSize > 0 {
			u.maxPageSize = maxSize
		}
	}
}

func NewUnitOfWork(db *sql.DB, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		db:              db,
		defaultPageSize: paging.DefaultPageSize,
		maxPageSize:     paging.MaxPageSize,
		tracked:         map[trackKey]*trackedEntity{},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type trackKey struct {
	table string
	id    int64
}

type trackedEntity struct {
	entity   any
	snapshot []any
	values   func() []any
	update   func(ctx context.Context, tx *sql.Tx) (int64, error)
}

type pendingWrite struct {
	entity any
	apply  func(ctx context.Context, tx *sql.Tx) (int64, error)
	// track registers the entity once the write has committed.
	track func()
}

func (u *UnitOfWork) lookup(table string, id int64) (any, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	te, ok := u.tracked[trackKey{table, id}]
	if !ok {
		return nil, false
	}
	return te.entity, true
}

func (u *UnitOfWork) isStagedForDelete(entity any) bool {
	for _, d := range u.deletes {
		if d.entity == entity {
			return true
		}
	}
	return false
}

func (u *UnitOfWork) isStagedForInsert(entity any) bool {
	for _, in := range u.inserts {
		if in.entity == entity {
			return true
		}
	}
	return false
}

func track[T any](u *UnitOfWork, m Mapping[T], e *T) {
	key := trackKey{m.Table, m.ID(e)}
	values := func() []any { return m.Values(e) }
	te := &trackedEntity{
		entity:   e,
		snapshot: values(),
		values:   values,
		update: func(ctx context.Context, tx *sql.Tx) (int64, error) {
			args := append(m.Values(e), m.ID(e))
			res, err := tx.ExecContext(ctx, m.updateSQL(), args...)
			if err != nil {
				return 0, fmt.Errorf("update %s %d: %w", m.Table, m.ID(e), err)
			}
			return res.RowsAffected()
		},
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.tracked[key]; !ok {
		u.sequence = append(u.sequence, key)
	}
	u.tracked[key] = te
}

func stageInsert[T any](u *UnitOfWork, m Mapping[T], e *T) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.isStagedForInsert(e) {
		return
	}
	// The generated id only reaches the entity after the commit.
	var id int64
	u.inserts = append(u.inserts, &pendingWrite{
		entity: e,
		apply: func(ctx context.Context, tx *sql.Tx) (int64, error) {
			res, err := tx.ExecContext(ctx, m.insertSQL(), m.Values(e)...)
			if err != nil {
				return 0, fmt.Errorf("insert %s: %w", m.Table, err)
			}
			if id, err = res.LastInsertId(); err != nil {
				return 0, fmt.Errorf("insert %s: %w", m.Table, err)
			}
			return res.RowsAffected()
		},
		track: func() {
			m.SetID(e, id)
			track(u, m, e)
		},
	})
}

func stageDelete[T any](u *UnitOfWork, m Mapping[T], e *T) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Deleting an entity that was never saved just cancels its insert.
	for i, in := range u.inserts {
		if in.entity == any(e) {
			u.inserts = append(u.inserts[:i], u.inserts[i+1:]...)
			return
		}
	}
	if u.isStagedForDelete(e) {
		return
	}
	key := trackKey{m.Table, m.ID(e)}
	u.deletes = append(u.deletes, &pendingWrite{
		entity: e,
		apply: func(ctx context.Context, tx *sql.Tx) (int64, error) {
			res, err := tx.ExecContext(ctx, m.deleteSQL(), m.ID(e))
			if err != nil {
				return 0, fmt.Errorf("delete %s %d: %w", m.Table, m.ID(e), err)
			}
			return res.RowsAffected()
		},
		track: func() { u.untrack(key) },
	})
}

func (u *UnitOfWork) untrack(key trackKey) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.tracked, key)
	for i, k := range u.sequence {
		if k == key {
			u.sequence = append(u.sequence[:i], u.sequence[i+1:]...)
			break
		}
	}
}

// hasChanges reports whether Save would write anything.
func (u *UnitOfWork) hasChanges() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.inserts) > 0 || len(u.deletes) > 0 || len(u.dirtyLocked()) > 0
}

func (u *UnitOfWork) dirtyLocked() []*trackedEntity {
	out := []*trackedEntity{}
	for _, key := range u.sequence {
		te := u.tracked[key]
		if u.isStagedForDelete(te.entity) {
			continue
		}
		if !reflect.DeepEqual(te.snapshot, te.values()) {
			out = append(out, te)
		}
	}
	return out
}

// Save commits inserts, then updates of modified tracked entities, then
// deletes, in one transaction. It reports whether at least one row changed.
// With nothing staged it returns false without touching the store.
func (u *UnitOfWork) Save(ctx context.Context) (bool, error) {
	if !u.hasChanges() {
		return false, nil
	}

	u.mu.Lock()
	inserts := u.inserts
	deletes := u.deletes
	dirty := u.dirtyLocked()
	u.mu.Unlock()

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}

	var affected int64
	run := func(apply func(context.Context, *sql.Tx) (int64, error)) error {
		n, err := apply(ctx, tx)
		if err != nil {
			return err
		}
		affected += n
		return nil
	}

	for _, w := range inserts {
		if err := run(w.apply); err != nil {
			_ = tx.Rollback()
			return false, err
		}
	}
	for _, te := range dirty {
		if err := run(te.update); err != nil {
			_ = tx.Rollback()
			return false, err
		}
	}
	for _, w := range deletes {
		if err := run(w.apply); err != nil {
			_ = tx.Rollback()
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	u.mu.Lock()
	u.inserts = nil
	u.deletes = nil
	for _, te := range dirty {
		te.snapshot = te.values()
	}
	u.mu.Unlock()

	for _, w := range inserts {
		w.track()
	}
	for _, w := range deletes {
		w.track()
	}

	return affected > 0, nil
}
