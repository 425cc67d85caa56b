package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/gradekeep/gradekeep/internal/command"
	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/view"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // command reported a failure outcome
	ExitCommandError = 2 // CLI error (bad config, unreadable input, etc.)
)

// ExitError carries a specific exit code out of a cobra RunE.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. A plain error maps
// to ExitFailure; nil maps to ExitSuccess.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// RenderResult writes one command outcome: the status line, then any
// table or summary the result carries.
func RenderResult(w io.Writer, res command.Result) {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
	if res.HasRows {
		renderTable(w, res.Rows, res.EmptyMessage)
	}
	if res.Summary != nil {
		renderSummary(w, *res.Summary)
	}
	if res.ShowHelp {
		fmt.Fprint(w, helpText)
	}
}

func renderTable(w io.Writer, rows []record.Record, emptyMessage string) {
	fmt.Fprintln(w, "ID Name Programme Mark")
	if len(rows) == 0 && emptyMessage != "" {
		fmt.Fprintln(w, emptyMessage)
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%d %s %s %s\n", r.ID, r.Name, r.Programme, record.FormatMark(r.Mark))
	}
}

func renderSummary(w io.Writer, s view.Summary) {
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintf(w, "Total students: %d\n", s.Count)
	fmt.Fprintf(w, "Average mark: %.2f\n", s.Average)
	fmt.Fprintf(w, "Highest: %s (%s)\n", record.FormatMark(s.Highest), s.HighestName)
	fmt.Fprintf(w, "Lowest : %s (%s)\n", record.FormatMark(s.Lowest), s.LowestName)
}

const helpText = `Commands (examples included):

OPEN / SAVE
  OPEN <file>                 e.g.  OPEN records.txt
  SAVE                        (saves back to last OPEN file)
  SAVE <file>                 e.g.  SAVE records.txt

VIEW
  SHOW ALL                    list all rows
  SHOW ALL SORT BY ID ASC     or DESC
  SHOW ALL SORT BY MARK ASC   or DESC
  SHOW SUMMARY                show count/average/highest/lowest

ADD / LOOKUP / EDIT / REMOVE
  INSERT ID=<int> Name="..." Programme="..." Mark=<float>
    e.g. INSERT ID=2501066 Name="Brian Goh" Programme="Digital Supply Chain" Mark=88.8
  QUERY ID=<int>              e.g. QUERY ID=2501066
  UPDATE ID=<int> [Name=...] [Programme=...] [Mark=<float>]
    e.g. UPDATE ID=2501066 Programme="Game Development" Mark=95.5
  DELETE ID=<int>             comes with Y/N confirmation

SEARCH
  FIND NAME "..."             e.g. FIND NAME "brian"
  FIND PROGRAMME "..."        e.g. FIND PROGRAMME "Digital Supply Chain"

IMPORT / EXPORT / BACKUP
  IMPORT CSV <file.csv>       header must be: ID,Name,Programme,Mark
  EXPORT CSV <file.csv>
  EXPORT SQL <file.sql>       SQLite/MySQL compatible INSERTs
  EXPORT DB <file.db>         write records into a SQLite database
  IMPORT DB <file.db>         read records back from a SQLite database
  BACKUP                      writes <stem>.bak-YYYYMMDD-HHMMSS.txt

OTHER
  HELP
  EXIT
`
