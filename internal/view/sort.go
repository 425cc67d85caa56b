// Package view produces reordered and filtered views of a record
// snapshot without mutating storage order.
package view

import (
	"sort"

	"github.com/gradekeep/gradekeep/internal/record"
)

// SortField selects the sort key for Sorted.
type SortField int

const (
	SortNone SortField = iota
	SortByID
	SortByMark
)

// Direction selects ascending or descending order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sorted returns a reordered copy of records. SortNone leaves store
// order unchanged. The ascending sort is stable, so records with equal
// keys keep their relative store order. Descending is implemented as
// "sort ascending stably, then reverse the whole sequence", which
// inverts tie order; tests pin that policy.
func Sorted(records []record.Record, field SortField, dir Direction) []record.Record {
	out := make([]record.Record, len(records))
	copy(out, records)

	switch field {
	case SortByID:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	case SortByMark:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Mark < out[j].Mark })
	case SortNone:
		return out
	}

	if dir == Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
