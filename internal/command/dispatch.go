package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gradekeep/gradekeep/internal/persist"
	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/sqlite"
	"github.com/gradekeep/gradekeep/internal/store"
	"github.com/gradekeep/gradekeep/internal/view"
)

// Status reports whether a command succeeded.
type Status int

const (
	StatusOK Status = iota
	StatusError
)

// Result is the outcome descriptor handed back to the boundary: a
// status, a one-line message, and optional data for the caller to
// render. The dispatcher never prints.
type Result struct {
	Status  Status
	Message string

	// Rows carries records to render as a table (SHOW ALL, QUERY, FIND).
	Rows []record.Record

	// HasRows distinguishes "render an empty table" from "no table".
	HasRows bool

	// EmptyMessage is rendered instead of rows when HasRows is set and
	// Rows is empty (e.g. "(no matches)" for a search without hits).
	EmptyMessage string

	// Summary is set by SHOW SUMMARY.
	Summary *view.Summary

	// NeedsConfirm asks the boundary for a Y/N round trip before the
	// command is re-submitted with confirmation. PendingID is the
	// record the confirmation applies to.
	NeedsConfirm bool
	PendingID    int32

	// ShowHelp asks the boundary to render its command reference.
	ShowHelp bool

	// Quit ends the session.
	Quit bool
}

func ok(msg string) Result     { return Result{Status: StatusOK, Message: msg} }
func failed(msg string) Result { return Result{Status: StatusError, Message: msg} }

// Dispatcher executes typed commands against the store and the
// persistence adapters. It holds no record state of its own; the store
// is injected, never reached through ambient globals.
type Dispatcher struct {
	store   *store.Store
	session *persist.Session
	clock   persist.Clock
}

// NewDispatcher wires a dispatcher to its store and session.
func NewDispatcher(st *store.Store, session *persist.Session, clock persist.Clock) *Dispatcher {
	if clock == nil {
		clock = persist.SystemClock{}
	}
	return &Dispatcher{store: st, session: session, clock: clock}
}

// Run parses and executes one raw command line. Parse failures become
// error results, never uncaught failures.
func (d *Dispatcher) Run(line string) Result {
	cmd, err := Parse(line)
	if err != nil {
		return failed(capitalizeError(err))
	}
	return d.Execute(cmd)
}

// Execute runs one typed command and produces its outcome. The type
// switch is exhaustive over the Command variants.
func (d *Dispatcher) Execute(cmd Command) Result {
	switch c := cmd.(type) {
	case Open:
		return d.open(c)
	case Save:
		return d.save(c)
	case ShowAll:
		rows := view.Sorted(d.store.Snapshot(), c.Field, c.Direction)
		return Result{
			Status:  StatusOK,
			Message: `Here are all the records found in the table "StudentRecords".`,
			Rows:    rows,
			HasRows: true,
		}
	case ShowSummary:
		s, any := view.Summarize(d.store.Snapshot())
		if !any {
			return ok("No records loaded.")
		}
		return Result{Status: StatusOK, Summary: &s}
	case Insert:
		if err := d.store.Insert(c.Rec); err != nil {
			return failed(fmt.Sprintf("The record with ID=%d already exists.", c.Rec.ID))
		}
		slog.Debug("record inserted", "id", c.Rec.ID)
		return ok(fmt.Sprintf("A new record with ID=%d is successfully inserted.", c.Rec.ID))
	case Query:
		rec, found := d.store.Get(c.ID)
		if !found {
			return failed(fmt.Sprintf("The record with ID=%d does not exist.", c.ID))
		}
		return Result{
			Status:  StatusOK,
			Message: fmt.Sprintf("The record with ID=%d is found in the data table.", c.ID),
			Rows:    []record.Record{rec},
			HasRows: true,
		}
	case Update:
		if err := d.store.Update(c.ID, c.Patch); err != nil {
			return failed(fmt.Sprintf("The record with ID=%d does not exist.", c.ID))
		}
		slog.Debug("record updated", "id", c.ID)
		return ok(fmt.Sprintf("The record with ID=%d is successfully updated.", c.ID))
	case Delete:
		return d.delete(c)
	case Find:
		return d.find(c)
	case ImportCSV:
		return d.importCSV(c)
	case ExportCSV:
		if c.Path == "" {
			return failed("Please provide a CSV filename.")
		}
		if err := persist.ExportCSV(c.Path, d.store.Snapshot()); err != nil {
			return failed(fmt.Sprintf("Failed to export CSV: %v.", err))
		}
		return ok(fmt.Sprintf("CSV exported to %q.", c.Path))
	case ExportSQL:
		if c.Path == "" {
			return failed("Please provide a SQL filename.")
		}
		if err := persist.ExportSQL(c.Path, d.store.Snapshot()); err != nil {
			return failed(fmt.Sprintf("Failed to export SQL: %v.", err))
		}
		return ok(fmt.Sprintf("SQL exported to %q.", c.Path))
	case ExportDB:
		if c.Path == "" {
			return failed("Please provide a database filename.")
		}
		if err := sqlite.ExportDB(context.Background(), c.Path, d.store.Snapshot()); err != nil {
			return failed(fmt.Sprintf("Failed to export database: %v.", err))
		}
		return ok(fmt.Sprintf("Database exported to %q.", c.Path))
	case ImportDB:
		return d.importDB(c)
	case Backup:
		path, err := persist.Backup(d.session, d.clock, d.store.Snapshot())
		if err != nil {
			return failed("Backup failed. Please OPEN and SAVE a file first.")
		}
		return ok(fmt.Sprintf("Backup file created: %q.", path))
	case Help:
		return Result{Status: StatusOK, ShowHelp: true}
	case Exit:
		return Result{Status: StatusOK, Quit: true}
	case Unknown:
		return failed("Unknown command. Type HELP.")
	}
	return failed("Unknown command. Type HELP.")
}

func (d *Dispatcher) open(c Open) Result {
	if c.Path == "" {
		return failed("Please provide a filename.")
	}
	recs, err := persist.LoadTSV(c.Path)
	if err != nil {
		return failed(fmt.Sprintf("Failed to open file %q: %v.", c.Path, err))
	}
	d.store.ReplaceAll(recs)
	d.session.SetCurrentFile(c.Path)
	slog.Debug("database loaded", "path", c.Path, "records", len(recs))
	return ok(fmt.Sprintf("The database file %q is successfully opened.", c.Path))
}

func (d *Dispatcher) save(c Save) Result {
	path := c.Path
	if path == "" {
		path = d.session.CurrentFile()
	}
	if path == "" {
		return failed("Failed to save. Please OPEN a file first or provide a filename.")
	}
	if err := persist.SaveTSV(path, d.store.Snapshot()); err != nil {
		return failed(fmt.Sprintf("Failed to save: %v.", err))
	}
	d.session.SetCurrentFile(path)
	slog.Debug("database saved", "path", path, "records", d.store.Len())
	return ok("The database file is successfully saved.")
}

func (d *Dispatcher) delete(c Delete) Result {
	if _, found := d.store.Get(c.ID); !found {
		return failed(fmt.Sprintf("The record with ID=%d does not exist.", c.ID))
	}
	if !c.Confirmed {
		return Result{
			Status:       StatusOK,
			Message:      fmt.Sprintf("Delete record with ID=%d?", c.ID),
			NeedsConfirm: true,
			PendingID:    c.ID,
		}
	}
	if err := d.store.Delete(c.ID); err != nil {
		return failed("Delete failed.")
	}
	slog.Debug("record deleted", "id", c.ID)
	return ok(fmt.Sprintf("The record with ID=%d is successfully deleted.", c.ID))
}

func (d *Dispatcher) find(c Find) Result {
	matches, err := view.Find(d.store.Snapshot(), c.Field, c.Needle)
	if err != nil {
		return failed("Please provide a search string.")
	}
	field := "NAME"
	if c.Field == view.SearchByProgramme {
		field = "PROGRAMME"
	}
	return Result{
		Status:       StatusOK,
		Message:      fmt.Sprintf("Search results for %s contains %q:", field, c.Needle),
		Rows:         matches,
		HasRows:      true,
		EmptyMessage: "(no matches)",
	}
}

func (d *Dispatcher) importCSV(c ImportCSV) Result {
	if c.Path == "" {
		return failed("Please provide a CSV filename.")
	}
	added, err := persist.ImportCSV(c.Path, d.store)
	if err != nil {
		return failed(fmt.Sprintf("Failed to import CSV: %v.", err))
	}
	slog.Debug("csv imported", "path", c.Path, "added", added)
	return ok(fmt.Sprintf("CSV imported from %q (%d records added).", c.Path, added))
}

func (d *Dispatcher) importDB(c ImportDB) Result {
	if c.Path == "" {
		return failed("Please provide a database filename.")
	}
	recs, err := sqlite.ImportDB(context.Background(), c.Path)
	if err != nil {
		return failed(fmt.Sprintf("Failed to import database: %v.", err))
	}
	added := 0
	for _, r := range recs {
		if err := d.store.Insert(r); err != nil {
			continue // existing id, no overwrite on import
		}
		added++
	}
	slog.Debug("database imported", "path", c.Path, "added", added)
	return ok(fmt.Sprintf("Database imported from %q (%d records added).", c.Path, added))
}

// capitalizeError renders a parse error as a user-facing status line.
func capitalizeError(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if msg[0] >= 'a' && msg[0] <= 'z' {
		msg = string(msg[0]-'a'+'A') + msg[1:]
	}
	return msg + "."
}
