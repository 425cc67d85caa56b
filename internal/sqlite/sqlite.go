// Package sqlite round-trips the record table through a real SQLite
// database file, the binary counterpart of the SQL text dump.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gradekeep/gradekeep/internal/record"
)

const schemaSQL = `
CREATE TABLE StudentRecords (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  programme TEXT NOT NULL,
  mark REAL NOT NULL
);`

// open opens (creating if needed) a SQLite database and applies the
// required pragmas. SQLite supports one writer at a time, so the pool
// is limited to a single connection.
func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// ExportDB writes records into the StudentRecords table of a SQLite
// database at path, replacing any previous table. The whole export
// runs in one transaction and every value is parameterized, never
// interpolated.
func ExportDB(ctx context.Context, path string, records []record.Record) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS StudentRecords"); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO StudentRecords(id,name,programme,mark) VALUES(?,?,?,?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.ID, r.Name, r.Programme, r.Mark); err != nil {
			return fmt.Errorf("insert record %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// ImportDB reads the StudentRecords table back in insertion order.
// ORDER BY rowid keeps the read deterministic across engines.
func ImportDB(ctx context.Context, path string) ([]record.Record, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, programme, mark FROM StudentRecords ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var recs []record.Record
	for rows.Next() {
		var (
			id              int32
			name, programme string
			mark            float64
		)
		if err := rows.Scan(&id, &name, &programme, &mark); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		recs = append(recs, record.New(id, name, programme, float32(mark)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return recs, nil
}
