// Package transfer decides which items appear on each side of a transfer
// list and derives new selections from transfer operations.
//
// The functions in this file are pure. They never modify the slices they
// are given; every change produces a fresh slice.
//
// Callers must supply an identity function that returns a unique key per
// logical item. Distinct items sharing a key are a contract violation: the
// results are then unspecified beyond the duplicate re-check performed by
// TransferAllVisibleToRight.
package transfer

import (
	"slices"
	"strings"

	"github.com/pluqqy/shuttle/pkg/fieldpath"
	"github.com/pluqqy/shuttle/pkg/models"
)

// FieldReader returns the display text of the field at accessor. It must
// return "" for a field that cannot be resolved.
type FieldReader[T any] func(item T, accessor string) string

// DefaultReader resolves accessors with fieldpath.Text
func DefaultReader[T any](item T, accessor string) string {
	return fieldpath.Text(item, accessor)
}

// Matches reports whether any column of item contains query, ignoring case.
// An empty query matches everything.
func Matches[T any](item T, query string, columns []models.Column, read FieldReader[T]) bool {
	if query == "" {
		return true
	}
	if read == nil {
		read = DefaultReader[T]
	}
	q := strings.ToLower(query)
	for _, col := range columns {
		if strings.Contains(strings.ToLower(read(item, col.Accessor)), q) {
			return true
		}
	}
	return false
}

// VisibleAvailable returns the available items whose key is not selected
// and which match query, in available order.
func VisibleAvailable[T any, K comparable](available, selected []T, query string, columns []models.Column, getID func(T) K, read FieldReader[T]) []T {
	taken := keySet(selected, getID)
	visible := make([]T, 0, len(available))
	for _, item := range available {
		if _, ok := taken[getID(item)]; ok {
			continue
		}
		if !Matches(item, query, columns, read) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// Contains reports whether an item with the key of item is in items
func Contains[T any, K comparable](items []T, item T, getID func(T) K) bool {
	key := getID(item)
	return slices.ContainsFunc(items, func(it T) bool {
		return getID(it) == key
	})
}

// TransferToRight appends item to selected unless its key is already
// present, in which case selected is returned as is.
func TransferToRight[T any, K comparable](selected []T, item T, getID func(T) K) []T {
	if Contains(selected, item, getID) {
		return selected
	}
	return append(slices.Clip(selected), item)
}

// TransferToLeft returns selected without the entry sharing item's key
func TransferToLeft[T any, K comparable](selected []T, item T, getID func(T) K) []T {
	key := getID(item)
	next := make([]T, 0, len(selected))
	for _, sel := range selected {
		if getID(sel) != key {
			next = append(next, sel)
		}
	}
	return next
}

// TransferAllVisibleToRight appends every visible item whose key is not
// already selected, keeping visible order. Keys repeated within visible
// are added once.
func TransferAllVisibleToRight[T any, K comparable](visible, selected []T, getID func(T) K) []T {
	taken := keySet(selected, getID)
	next := make([]T, len(selected), len(selected)+len(visible))
	copy(next, selected)
	for _, item := range visible {
		key := getID(item)
		if _, ok := taken[key]; ok {
			continue
		}
		taken[key] = struct{}{}
		next = append(next, item)
	}
	return next
}

// TransferAllToLeft returns an empty selection
func TransferAllToLeft[T any]() []T {
	return []T{}
}

// Keys returns the key of every item, in order
func Keys[T any, K comparable](items []T, getID func(T) K) []K {
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = getID(item)
	}
	return keys
}

func keySet[T any, K comparable](items []T, getID func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(items))
	for _, item := range items {
		set[getID(item)] = struct{}{}
	}
	return set
}
