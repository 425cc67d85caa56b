// Package command turns raw command lines into typed commands and
// dispatches them against the record store. It consumes and produces
// strings plus result descriptors; all terminal I/O belongs to the
// boundary.
package command

import (
	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/store"
	"github.com/gradekeep/gradekeep/internal/view"
)

// Command is the closed set of parsed command variants. The verb set
// is matched exhaustively by the dispatcher; there is no string-prefix
// dispatch, so SHOW ALL can never be shadowed by SHOW ALLOCATE.
type Command interface {
	isCommand()
}

// Open loads a TSV database file, replacing the whole table.
type Open struct {
	Path string
}

// Save writes the table as TSV. An empty Path reuses the current
// database file from the session.
type Save struct {
	Path string
}

// ShowAll lists every record, optionally through a sorted view.
type ShowAll struct {
	Field     view.SortField
	Direction view.Direction
}

// ShowSummary reports count, average, highest and lowest marks.
type ShowSummary struct{}

// Insert adds a new record.
type Insert struct {
	Rec record.Record
}

// Query looks up one record by ID.
type Query struct {
	ID int32
}

// Update overwrites only the supplied fields of an existing record.
type Update struct {
	ID    int32
	Patch store.Patch
}

// Delete removes a record by ID. The first dispatch returns a
// confirmation request; the boundary re-submits with Confirmed set
// after the Y/N round trip.
type Delete struct {
	ID        int32
	Confirmed bool
}

// Find searches one text field for a case-insensitive substring.
type Find struct {
	Field  view.SearchField
	Needle string
}

// ImportCSV merges records from a CSV file, skipping existing IDs.
type ImportCSV struct {
	Path string
}

// ExportCSV writes the table as CSV.
type ExportCSV struct {
	Path string
}

// ExportSQL writes the table as a SQL text dump.
type ExportSQL struct {
	Path string
}

// ExportDB writes the table into a SQLite database file.
type ExportDB struct {
	Path string
}

// ImportDB merges records from a SQLite database file, skipping
// existing IDs.
type ImportDB struct {
	Path string
}

// Backup writes a timestamped copy of the current database file.
type Backup struct{}

// Help asks the boundary to render the command reference.
type Help struct{}

// Exit ends the session.
type Exit struct{}

// Unknown is any unrecognized verb. It produces a status message, not
// a process failure.
type Unknown struct {
	Verb string
}

func (Open) isCommand()        {}
func (Save) isCommand()        {}
func (ShowAll) isCommand()     {}
func (ShowSummary) isCommand() {}
func (Insert) isCommand()      {}
func (Query) isCommand()       {}
func (Update) isCommand()      {}
func (Delete) isCommand()      {}
func (Find) isCommand()        {}
func (ImportCSV) isCommand()   {}
func (ExportCSV) isCommand()   {}
func (ExportSQL) isCommand()   {}
func (ExportDB) isCommand()    {}
func (ImportDB) isCommand()    {}
func (Backup) isCommand()      {}
func (Help) isCommand()        {}
func (Exit) isCommand()        {}
func (Unknown) isCommand()     {}
