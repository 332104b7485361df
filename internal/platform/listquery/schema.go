// Package listquery implements the search, category filter, sort and
// pagination steps shared by every list endpoint.
package listquery

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

var ErrConfiguration = crerr.New("list query configuration error")

// ConfigurationError reports a request for a sort key or filter the schema
// does not declare. It indicates a caller bug, not bad data.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %q", e.Reason, e.Field)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

type Direction int

const (
	DirectionDefault Direction = iota
	Ascending
	Descending
)

// ParseDirection accepts "asc"/"desc" and treats anything else as default.
func ParseDirection(v string) Direction {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "asc":
		return Ascending
	case "desc":
		return Descending
	default:
		return DirectionDefault
	}
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

type sortKind int

const (
	kindString sortKind = iota
	kindNumber
	kindTime
)

type sortKey[T any] struct {
	kind      sortKind
	direction Direction
	str       func(T) string
	num       func(T) float64
	tm        func(T) time.Time
}

// Schema describes how one entity type is searched, filtered and sorted.
// Build it once at startup; it is safe for concurrent use afterwards.
type Schema[T any] struct {
	name        string
	locale      language.Tag
	search      []func(T) []string
	category    func(T) string
	sortKeys    map[string]sortKey[T]
	defaultSort string
}

func NewSchema[T any](name string) *Schema[T] {
	return &Schema[T]{
		name:     name,
		locale:   language.English,
		sortKeys: make(map[string]sortKey[T]),
	}
}

// WithLocale sets the collation used for string sort keys.
func (s *Schema[T]) WithLocale(tag language.Tag) *Schema[T] {
	if tag != language.Und {
		s.locale = tag
	}
	return s
}

// SearchOn adds text fields that free-text search matches against.
func (s *Schema[T]) SearchOn(fields ...func(T) string) *Schema[T] {
	for _, field := range fields {
		field := field
		s.search = append(s.search, func(item T) []string { return []string{field(item)} })
	}
	return s
}

// SearchOnEach adds a multi-valued text field such as a tag list.
func (s *Schema[T]) SearchOnEach(field func(T) []string) *Schema[T] {
	s.search = append(s.search, field)
	return s
}

func (s *Schema[T]) CategoryOn(field func(T) string) *Schema[T] {
	s.category = field
	return s
}

func (s *Schema[T]) SortString(key string, dir Direction, field func(T) string) *Schema[T] {
	return s.addSortKey(key, sortKey[T]{kind: kindString, direction: dir, str: field})
}

func (s *Schema[T]) SortNumber(key string, dir Direction, field func(T) float64) *Schema[T] {
	return s.addSortKey(key, sortKey[T]{kind: kindNumber, direction: dir, num: field})
}

func (s *Schema[T]) SortTime(key string, dir Direction, field func(T) time.Time) *Schema[T] {
	return s.addSortKey(key, sortKey[T]{kind: kindTime, direction: dir, tm: field})
}

// DefaultSort names the key used when a query does not ask for one. It must
// already be declared.
func (s *Schema[T]) DefaultSort(key string) *Schema[T] {
	if _, ok := s.sortKeys[key]; !ok {
		panic(fmt.Sprintf("listquery: default sort %q is not declared on %s", key, s.name))
	}
	s.defaultSort = key
	return s
}

func (s *Schema[T]) addSortKey(key string, sk sortKey[T]) *Schema[T] {
	key = normalizeKey(key)
	if sk.direction == DirectionDefault {
		sk.direction = Ascending
	}
	s.sortKeys[key] = sk
	if s.defaultSort == "" {
		s.defaultSort = key
	}
	return s
}

// SortKeys lists the declared sort keys in lexical order.
func (s *Schema[T]) SortKeys() []string {
	keys := make([]string, 0, len(s.sortKeys))
	for key := range s.sortKeys {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Search keeps items where any search field contains term, ignoring case.
// A blank term returns items unchanged.
func (s *Schema[T]) Search(items []T, term string) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}

	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.matches(fold, item, needle) {
			out = append(out, item)
		}
	}
	return out
}

func (s *Schema[T]) matches(fold cases.Caser, item T, needle string) bool {
	for _, field := range s.search {
		for _, value := range field(item) {
			if value == "" {
				continue
			}
			if strings.Contains(fold.String(value), needle) {
				return true
			}
		}
	}
	return false
}

// FilterByCategory keeps items whose category equals category, ignoring
// case. "all" and "" disable the filter.
func (s *Schema[T]) FilterByCategory(items []T, category string) ([]T, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return items, nil
	}
	if s.category == nil {
		return nil, &ConfigurationError{Field: category, Reason: s.name + " has no category field, cannot filter by"}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(s.category(item), category) {
			out = append(out, item)
		}
	}
	return out, nil
}

// SortBy returns a stably sorted copy of items. An empty key uses the
// schema default; DirectionDefault uses the key's own direction.
func (s *Schema[T]) SortBy(items []T, key string, dir Direction) ([]T, error) {
	key = normalizeKey(key)
	if key == "" {
		key = s.defaultSort
	}
	sk, ok := s.sortKeys[key]
	if !ok {
		return nil, &ConfigurationError{Field: key, Reason: "unknown " + s.name + " sort key"}
	}
	if dir == DirectionDefault {
		dir = sk.direction
	}

	out := slices.Clone(items)
	compare := s.comparator(sk)
	slices.SortStableFunc(out, func(a, b T) int {
		if dir == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out, nil
}

func (s *Schema[T]) comparator(sk sortKey[T]) func(a, b T) int {
	switch sk.kind {
	case kindNumber:
		return func(a, b T) int { return cmp.Compare(sk.num(a), sk.num(b)) }
	case kindTime:
		return func(a, b T) int { return sk.tm(a).Compare(sk.tm(b)) }
	default:
		col := collate.New(s.locale, collate.IgnoreCase)
		return func(a, b T) int { return col.CompareString(sk.str(a), sk.str(b)) }
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
