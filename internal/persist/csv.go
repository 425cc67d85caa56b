package persist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gradekeep/gradekeep/internal/csvio"
	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/store"
)

// ImportCSV reads records from a CSV file into the store.
//
// A leading header row (`ID,Name,Programme,Mark`, case-insensitive) is
// consumed and discarded, and a header recurring mid-file is skipped
// the same way. Malformed rows are skipped, not fatal. Rows whose id
// already exists in the store are skipped: import never overwrites.
// Returns the number of records added.
func ImportCSV(path string, st *store.Store) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &IOError{Op: OpOpen, Path: path, Err: err}
	}
	defer f.Close()

	added := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields, err := csvio.SplitRow(line)
		if err != nil {
			continue // malformed row, skip and continue
		}
		if csvio.IsHeader(fields) {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			continue
		}
		mark, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 32)
		if err != nil {
			continue
		}

		rec := record.New(int32(id), fields[1], fields[2], float32(mark))
		if err := st.Insert(rec); err != nil {
			continue // existing id, no overwrite on import
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, &IOError{Op: OpOpen, Path: path, Err: err}
	}

	return added, nil
}

// ExportCSV writes the header line followed by one
// `id,"name","programme",mark` row per record.
func ExportCSV(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: OpWrite, Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, csvio.HeaderLine())
	for _, r := range records {
		fmt.Fprintln(w, csvio.FormatRow(r))
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
