package listquery

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage bounds the page number a request may ask for.
	MaxPage = 100000
)

// Query is one list request. Zero values mean: no search, no filter,
// default sort, first page of DefaultPageSize.
type Query struct {
	Search    string
	Category  string
	SortKey   string
	Direction Direction
	Page      int
	PageSize  int
}

type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Apply runs search, category filter, sort and pagination in that order.
func (s *Schema[T]) Apply(items []T, q Query) (Page[T], error) {
	filtered := s.Search(items, q.Search)

	filtered, err := s.FilterByCategory(filtered, q.Category)
	if err != nil {
		return Page[T]{}, err
	}

	sorted, err := s.SortBy(filtered, q.SortKey, q.Direction)
	if err != nil {
		return Page[T]{}, err
	}

	return Paginate(sorted, q.Page, q.PageSize), nil
}

// Paginate slices a 1-based page out of items. A page past the end is empty
// but still reports the totals.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// The offset is only computed for pages inside the result, so a huge
	// page number cannot overflow into a valid window.
	start, end := total, total
	if page-1 < totalPages {
		start = (page - 1) * pageSize
		end = min(start+pageSize, total)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
