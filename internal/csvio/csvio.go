// Package csvio parses and writes the four-field CSV rows used by
// import and export.
//
// The grammar is deliberately narrower than encoding/csv: exactly four
// fields (id, name, programme, mark), RFC4180-style quote doubling
// inside quoted fields, and a skip-and-continue policy where a
// malformed row is rejected by itself rather than failing the file.
package csvio

import (
	"fmt"
	"strings"

	"github.com/gradekeep/gradekeep/internal/record"
)

// FieldCount is the fixed number of fields per row.
const FieldCount = 4

// RowError reports a structurally malformed row. Callers skip the row
// and continue with the next line.
type RowError struct {
	Reason string
}

func (e *RowError) Error() string {
	return "malformed CSV row: " + e.Reason
}

// header is the canonical header row, compared case-insensitively.
var header = [FieldCount]string{"ID", "Name", "Programme", "Mark"}

// SplitRow parses one CSV line into exactly four fields.
//
// A field opening with `"` runs to the next unescaped quote; a doubled
// `""` inside the quoted region is a literal quote in the value. After
// the closing quote only whitespace and, for the first three fields, a
// comma may appear. An unquoted field runs to the next comma, CR or
// LF and is taken literally. Trailing whitespace after the fourth
// field is tolerated; any other trailing content is malformed.
func SplitRow(line string) ([FieldCount]string, error) {
	var fields [FieldCount]string
	p := 0
	n := len(line)

	skipBlanks := func() {
		for p < n && (line[p] == ' ' || line[p] == '\t') {
			p++
		}
	}

	for col := 0; col < FieldCount; col++ {
		skipBlanks()

		if p < n && line[p] == '"' {
			p++ // opening quote
			var b strings.Builder
			closed := false
			for p < n {
				if line[p] == '"' {
					if p+1 < n && line[p+1] == '"' {
						b.WriteByte('"')
						p += 2
						continue
					}
					p++ // closing quote
					closed = true
					break
				}
				b.WriteByte(line[p])
				p++
			}
			if !closed {
				return fields, &RowError{Reason: fmt.Sprintf("field %d: unterminated quote", col)}
			}
			skipBlanks()
			if col < FieldCount-1 {
				if p >= n || line[p] != ',' {
					return fields, &RowError{Reason: fmt.Sprintf("field %d: expected comma after closing quote", col)}
				}
				p++ // comma
			}
			fields[col] = b.String()
		} else {
			start := p
			for p < n && line[p] != ',' && line[p] != '\r' && line[p] != '\n' {
				p++
			}
			fields[col] = line[start:p]
			if col < FieldCount-1 {
				if p >= n || line[p] != ',' {
					return fields, &RowError{Reason: fmt.Sprintf("field %d: expected comma", col)}
				}
				p++ // comma
			}
		}
	}

	// Trailing whitespace and line endings are fine; anything else is
	// extra content after the fourth field.
	for p < n {
		switch line[p] {
		case ' ', '\t', '\r', '\n':
			p++
		default:
			return fields, &RowError{Reason: "extra content after fourth field"}
		}
	}

	return fields, nil
}

// IsHeader reports whether a parsed row is the canonical header
// `ID,Name,Programme,Mark`, compared field by field ignoring case. A
// header recurring mid-file is skipped the same way as a leading one.
func IsHeader(fields [FieldCount]string) bool {
	for i, want := range header {
		if !strings.EqualFold(fields[i], want) {
			return false
		}
	}
	return true
}

// HeaderLine is the header emitted by export.
func HeaderLine() string {
	return strings.Join(header[:], ",")
}

// FormatRow renders one record as `id,"name","programme",mark`. The
// id and mark are unquoted; literal quotes inside the text fields are
// doubled. No other escaping.
func FormatRow(r record.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d,", r.ID)
	writeQuoted(&b, r.Name)
	b.WriteByte(',')
	writeQuoted(&b, r.Programme)
	b.WriteByte(',')
	b.WriteString(record.FormatMark(r.Mark))
	return b.String()
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}
