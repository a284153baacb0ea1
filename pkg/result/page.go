package result

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPageNumber keeps (number-1)*size within int64 for every valid size.
	MaxPageNumber = math.MaxInt64 / MaxPageSize
)

// PageResult is the paginated payload carried inside a Result.
type PageResult[T any] struct {
	Records     []T   `json:"records"`
	Total       int64 `json:"total"`
	Current     int64 `json:"current"`
	Size        int64 `json:"size"`
	Pages       int64 `json:"pages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// NewPage builds a PageResult and derives pages, hasNext and hasPrevious.
func NewPage[T any](records []T, total, current, size int64) PageResult[T] {
	if records == nil {
		records = []T{}
	}
	var pages int64
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return PageResult[T]{
		Records:     records,
		Total:       total,
		Current:     current,
		Size:        size,
		Pages:       pages,
		HasNext:     current < pages,
		HasPrevious: current > 1,
	}
}

// EmptyPage is a page with no records.
func EmptyPage[T any]() PageResult[T] {
	return PageResult[T]{Records: []T{}}
}

// Page is a normalised page request. Page numbers are 1-based.
type Page struct {
	Number int64
	Size   int64
}

// NewPageRequest applies the defaults (page 1, size 10) and caps size at
// MaxPageSize and number at MaxPageNumber.
func NewPageRequest(number, size int64) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Skip is the number of records before the first one of this page. It
// saturates at math.MaxInt64 instead of overflowing.
func (p Page) Skip() int64 {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt64/p.Size {
		return math.MaxInt64
	}
	return (p.Number - 1) * p.Size
}
