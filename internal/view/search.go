package view

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gradekeep/gradekeep/internal/record"
)

// SearchField selects which text field Find matches against.
type SearchField int

const (
	SearchByName SearchField = iota
	SearchByProgramme
)

// ErrEmptyNeedle reports a search with no search string. This is a
// distinct outcome from zero matches: an empty needle never means
// "match everything".
var ErrEmptyNeedle = errors.New("no search string provided")

var foldCaser = cases.Fold()

// Find returns the records whose selected field contains needle,
// ignoring case, in store order. Zero matches yields an empty, non-nil
// slice and no error.
func Find(records []record.Record, field SearchField, needle string) ([]record.Record, error) {
	if needle == "" {
		return nil, ErrEmptyNeedle
	}

	folded := foldCaser.String(needle)
	out := []record.Record{}
	for _, r := range records {
		hay := r.Name
		if field == SearchByProgramme {
			hay = r.Programme
		}
		if strings.Contains(foldCaser.String(hay), folded) {
			out = append(out, r)
		}
	}
	return out, nil
}
