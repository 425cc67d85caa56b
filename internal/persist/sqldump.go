package persist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gradekeep/gradekeep/internal/record"
)

// createTableSQL matches the schema used by the SQLite adapter so a
// dump replays cleanly into either engine.
const createTableSQL = `CREATE TABLE StudentRecords (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  programme TEXT NOT NULL,
  mark REAL NOT NULL
);`

// ExportSQL writes a SQL text dump: a comment line, DROP TABLE IF
// EXISTS, the fixed CREATE TABLE, and one INSERT per record. Single
// quotes inside text fields are doubled for SQL-literal safety.
func ExportSQL(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: OpWrite, Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "-- SQL dump generated by gradekeep")
	fmt.Fprintln(w, "DROP TABLE IF EXISTS StudentRecords;")
	fmt.Fprintln(w, createTableSQL)
	for _, r := range records {
		fmt.Fprintf(w, "INSERT INTO StudentRecords(id,name,programme,mark) VALUES(%d,'%s','%s',%s);\n",
			r.ID,
			escapeSQLText(r.Name),
			escapeSQLText(r.Programme),
			record.FormatMark(r.Mark))
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

// escapeSQLText doubles single quotes for use inside a SQL string
// literal. No other escaping is performed.
func escapeSQLText(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
