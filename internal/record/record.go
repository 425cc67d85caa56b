// Package record defines the student record value type shared by every
// layer: the store, the text formats, and the command dispatcher.
package record

import (
	"strconv"
	"unicode/utf8"
)

// MaxTextLen bounds Name and Programme to 127 bytes. Longer values are
// truncated silently at the data-model boundary; callers never see an
// error for oversized text.
const MaxTextLen = 127

// Record is one student's stored data. It is a plain value: lookups
// hand out copies, and mutation happens only through the store.
type Record struct {
	ID        int32
	Name      string
	Programme string
	Mark      float32
}

// New builds a record with Name and Programme clamped to MaxTextLen.
func New(id int32, name, programme string, mark float32) Record {
	return Record{
		ID:        id,
		Name:      ClampText(name),
		Programme: ClampText(programme),
		Mark:      mark,
	}
}

// ClampText truncates s to at most MaxTextLen bytes. The cut backs off
// to a rune start so the result is always valid UTF-8; the byte bound
// is never exceeded.
func ClampText(s string) string {
	if len(s) <= MaxTextLen {
		return s
	}
	cut := MaxTextLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// FormatMark renders a mark with exactly one digit after the decimal
// point, the fixed format used by the TSV, CSV and SQL outputs.
func FormatMark(mark float32) string {
	return strconv.FormatFloat(float64(mark), 'f', 1, 64)
}
