// Package paging turns a filtered, ordered sequence into one page plus count metadata.
package paging

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 50
)

// Params carries the requested page. Zero values mean "unspecified".
type Params struct {
	PageNumber int `form:"pageNumber" json:"pageNumber"`
	PageSize   int `form:"pageSize" json:"pageSize"`
}

// Normalize applies defaults and bounds. A zero page size takes defaultSize;
// any other size is clamped to [1, maxSize].
func (p Params) Normalize(defaultSize, maxSize int) Params {
	if maxSize < 1 {
		maxSize = MaxPageSize
	}
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	if defaultSize > maxSize {
		defaultSize = maxSize
	}

	out := p
	if out.PageNumber < 1 {
		out.PageNumber = DefaultPageNumber
	}
	switch {
	case out.PageSize == 0:
		out.PageSize = defaultSize
	case out.PageSize < 1:
		out.PageSize = 1
	case out.PageSize > maxSize:
		out.PageSize = maxSize
	}
	return out
}

// Skip is the number of rows before the requested page.
func (p Params) Skip() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Page is one slice of a larger sequence.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int
	TotalPages int
}

// New builds a page from rows already sliced by the store and the unsliced
// count. p must already be normalized.
func New[T any](items []T, totalCount int, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, p.PageSize),
	}
}

// FromSlice pages an in-memory sequence. A page past the end is empty.
func FromSlice[T any](all []T, p Params) Page[T] {
	p = p.Normalize(DefaultPageSize, MaxPageSize)
	skip := p.Skip()
	if skip >= len(all) {
		return New([]T{}, len(all), p)
	}
	end := skip + p.PageSize
	if end > len(all) {
		end = len(all)
	}
	items := make([]T, end-skip)
	copy(items, all[skip:end])
	return New(items, len(all), p)
}

func (pg Page[T]) HasPrevious() bool { return pg.PageNumber > 1 }

func (pg Page[T]) HasNext() bool { return pg.PageNumber < pg.TotalPages }

// Map converts the items of a page while keeping its metadata.
func Map[T, U any](pg Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(pg.Items))
	for _, it := range pg.Items {
		out = append(out, fn(it))
	}
	return Page[U]{
		Items:      out,
		PageNumber: pg.PageNumber,
		PageSize:   pg.PageSize,
		TotalCount: pg.TotalCount,
		TotalPages: pg.TotalPages,
	}
}

func totalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
