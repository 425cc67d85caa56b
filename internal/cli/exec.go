package cli

import (
	"github.com/spf13/cobra"

	"github.com/gradekeep/gradekeep/internal/command"
	"github.com/gradekeep/gradekeep/internal/config"
	"github.com/gradekeep/gradekeep/internal/persist"
	"github.com/gradekeep/gradekeep/internal/store"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	*RootOptions
	Database string
	Yes      bool
}

// NewExecCommand creates the one-shot exec command: it opens the
// database, runs a single command line, saves when the command
// mutated the table, and exits with a status code.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec <command-line>",
		Short: "Run a single command non-interactively",
		Long: `Run one command against the database and exit. DELETE requires
--yes, since there is no interactive confirmation.

Example:
  gradekeep exec --db records.txt 'SHOW ALL SORT BY MARK DESC'
  gradekeep exec --db records.txt --yes 'DELETE ID=2501066'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "TSV database file to open first")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm destructive commands")

	return cmd
}

func runExec(opts *ExecOptions, line string, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	out := cmd.OutOrStdout()
	st := store.New()
	dispatcher := command.NewDispatcher(st, &persist.Session{}, nil)

	db := opts.Database
	if db == "" {
		db = cfg.Database
	}
	if db != "" {
		if res := dispatcher.Execute(command.Open{Path: db}); res.Status != command.StatusOK {
			return &ExitError{Code: ExitCommandError, Message: res.Message}
		}
	}

	parsed, parseErr := command.Parse(line)
	if parseErr != nil {
		res := dispatcher.Run(line) // renders the parse failure uniformly
		RenderResult(out, res)
		return &ExitError{Code: ExitFailure, Message: res.Message}
	}
	if del, isDelete := parsed.(command.Delete); isDelete {
		if !opts.Yes {
			return &ExitError{Code: ExitCommandError, Message: "DELETE requires --yes in exec mode"}
		}
		del.Confirmed = true
		parsed = del
	}

	res := dispatcher.Execute(parsed)
	RenderResult(out, res)
	if res.Status != command.StatusOK {
		return &ExitError{Code: ExitFailure, Message: res.Message}
	}

	if db != "" && mutates(parsed) {
		if save := dispatcher.Execute(command.Save{}); save.Status != command.StatusOK {
			return &ExitError{Code: ExitFailure, Message: save.Message}
		}
	}
	return nil
}

// mutates reports whether a command changes the in-memory table, so
// exec knows to write the database back.
func mutates(cmd command.Command) bool {
	switch cmd.(type) {
	case command.Insert, command.Update, command.Delete, command.ImportCSV, command.ImportDB:
		return true
	}
	return false
}
