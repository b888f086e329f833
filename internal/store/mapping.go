// Package store is the relational persistence layer: a per-request unit of
// work that stages writes until Save, and generic entity sets that push
// filter, sort and paging into SQL.
package store

import (
	"database/sql"
	"strings"
	"time"

	"bespokedbikes/internal/query"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Mapping describes how an entity type is stored.
type Mapping[T any] struct {
	Table   string
	Alias   string
	Key     string
	Columns []string       // writable columns, in Values order
	Values  func(*T) []any // values for Columns
	ID      func(*T) int64
	SetID   func(*T, int64)

	// Joins eager-loads related rows; Extra lists their select expressions,
	// which Scan reads after the key and Columns.
	Joins string
	Extra []string
	Scan  func(Scanner) (*T, error)

	Fields query.Fields
}

// KeyColumn is the alias-qualified key column.
func (m Mapping[T]) KeyColumn() string {
	return m.Alias + "." + m.Key
}

func (m Mapping[T]) selectList() string {
	cols := Qualify(m.Alias, m.Key, m.Columns)
	cols = append(cols, m.Extra...)
	return strings.Join(cols, ", ")
}

func (m Mapping[T]) from() string {
	from := m.Table + " " + m.Alias
	if m.Joins != "" {
		from += " " + m.Joins
	}
	return from
}

func (m Mapping[T]) insertSQL() string {
	marks := make([]string, len(m.Columns))
	for i := range marks {
		marks[i] = "?"
	}
	return "INSERT INTO " + m.Table + " (" + strings.Join(m.Columns, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
}

func (m Mapping[T]) updateSQL() string {
	sets := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		sets[i] = c + " = ?"
	}
	return "UPDATE " + m.Table + " SET " + strings.Join(sets, ", ") + " WHERE " + m.Key + " = ?"
}

func (m Mapping[T]) deleteSQL() string {
	return "DELETE FROM " + m.Table + " WHERE " + m.Key + " = ?"
}

// Qualify prefixes key and columns with alias.
func Qualify(alias, key string, columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	out = append(out, alias+"."+key)
	for _, c := range columns {
		out = append(out, alias+"."+c)
	}
	return out
}

// NullTime converts an optional timestamp into a driver value.
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// TimePtr is the inverse of NullTime.
func TimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
