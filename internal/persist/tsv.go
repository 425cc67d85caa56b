package persist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gradekeep/gradekeep/internal/record"
)

// LoadTSV reads a tab-separated database file and returns its records
// in file order.
//
// Each line is `id<TAB>name<TAB>programme<TAB>mark`. Lines with fewer
// than four tab-separated tokens are skipped silently, as are lines
// whose id or mark fails to parse. A duplicate id keeps the first
// occurrence. The caller wholesale-replaces the store only on success,
// so a failed open leaves the previous table intact.
func LoadTSV(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: OpOpen, Path: path, Err: err}
	}
	defer f.Close()

	var recs []record.Record
	seen := map[int32]bool{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue // malformed line, skip and continue
		}

		id, err := strconv.ParseInt(parts[0], 10, 32)
		if err != nil {
			continue
		}
		mark, err := strconv.ParseFloat(parts[3], 32)
		if err != nil {
			continue
		}
		if seen[int32(id)] {
			continue
		}
		seen[int32(id)] = true

		recs = append(recs, record.New(int32(id), parts[1], parts[2], float32(mark)))
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: OpOpen, Path: path, Err: err}
	}

	return recs, nil
}

// SaveTSV writes records to path, one `id<TAB>name<TAB>programme<TAB>mark`
// line per record, mark with one decimal digit.
func SaveTSV(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: OpWrite, Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Programme, record.FormatMark(r.Mark))
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return &IOError{Op: OpWrite, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}
