package transfer

import (
	"reflect"
	"slices"

	"github.com/pluqqy/shuttle/pkg/models"
)

// sameSlice reports whether a and b view the same elements: the same
// backing array with the same bounds. Nil and empty non-nil differ.
func sameSlice[T any](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) || cap(a) != cap(b) {
		return false
	}
	return a == nil || reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

type memoKey struct {
	query   string
	version uint64
}

// visibleMemo caches the last visible-available computation. It holds on
// to the input slices it was computed from so their backing arrays cannot
// be freed and reused by a later, different slice. Any change in the
// inputs, the key or the columns is a miss.
type visibleMemo[T any] struct {
	valid     bool
	key       memoKey
	available []T
	selected  []T
	columns   []models.Column
	result    []T

	hits   int
	misses int
}

func (m *visibleMemo[T]) get(key memoKey, available, selected []T, columns []models.Column) ([]T, bool) {
	if m.valid && m.key == key &&
		sameSlice(m.available, available) &&
		sameSlice(m.selected, selected) &&
		slices.Equal(m.columns, columns) {
		m.hits++
		return m.result, true
	}
	m.misses++
	return nil, false
}

func (m *visibleMemo[T]) put(key memoKey, available, selected []T, columns []models.Column, result []T) {
	m.valid = true
	m.key = key
	m.available = available
	m.selected = selected
	m.columns = slices.Clone(columns)
	m.result = result
}

func (m *visibleMemo[T]) reset() {
	m.valid = false
	m.available = nil
	m.selected = nil
	m.result = nil
	m.columns = nil
}
