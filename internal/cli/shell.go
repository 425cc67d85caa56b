package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gradekeep/gradekeep/internal/command"
	"github.com/gradekeep/gradekeep/internal/config"
	"github.com/gradekeep/gradekeep/internal/persist"
	"github.com/gradekeep/gradekeep/internal/store"
)

// ShellOptions holds flags for the shell command.
type ShellOptions struct {
	*RootOptions
	Database string
}

// NewShellCommand creates the interactive shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShellOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive command shell",
		Long: `Start the interactive prompt loop. Each line is one command; type
HELP for the command reference and EXIT to leave.

Example:
  gradekeep shell --db records.txt
  gradekeep shell --config gradekeep.yaml --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "TSV database file to open at startup")

	return cmd
}

func runShell(opts *ShellOptions, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	session := uuid.NewString()
	slog.Info("shell starting", "session", session)

	reader := bufio.NewScanner(in)

	if cfg.Password != "" && !passwordGate(cfg, reader, out) {
		fmt.Fprintln(out, "Too many invalid password attempts. Exiting.")
		return &ExitError{Code: ExitCommandError, Message: "password rejected"}
	}

	st := store.New()
	dispatcher := command.NewDispatcher(st, &persist.Session{}, nil)

	// Open the startup database, --db flag over config.
	startup := opts.Database
	if startup == "" {
		startup = cfg.Database
	}
	if startup != "" {
		res := dispatcher.Execute(command.Open{Path: startup})
		RenderResult(out, res)
	}

	fmt.Fprintln(out, "Type HELP for available commands.")

	for {
		fmt.Fprintf(out, "%s: ", cfg.Prompt)
		if !reader.Scan() {
			break // EOF ends the session like EXIT
		}
		line := strings.TrimSpace(reader.Text())
		if line == "" {
			continue
		}

		slog.Debug("command received", "session", session, "line", line)
		res := dispatcher.Run(line)
		if res.Quit {
			break
		}
		if res.NeedsConfirm {
			res = confirmDelete(dispatcher, res, reader, out)
		}
		RenderResult(out, res)
	}

	slog.Info("shell stopping", "session", session)
	return nil
}

// passwordGate prompts for the configured password, allowing up to
// MaxAttempts tries. Returns true once the password is accepted.
func passwordGate(cfg config.Config, reader *bufio.Scanner, out io.Writer) bool {
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		fmt.Fprintf(out, "Please enter database password to continue (attempt %d of %d): ",
			attempt, cfg.MaxAttempts)
		if !reader.Scan() {
			return false
		}
		if strings.TrimSpace(reader.Text()) == cfg.Password {
			fmt.Fprintln(out, "Password accepted. Welcome to gradekeep.")
			return true
		}
		fmt.Fprintln(out, "Incorrect password.")
	}
	return false
}

// confirmDelete runs the Y/N round trip for a pending delete and
// re-submits the command with confirmation on Y.
func confirmDelete(d *command.Dispatcher, pending command.Result, reader *bufio.Scanner, out io.Writer) command.Result {
	fmt.Fprintf(out, "%s Type Y to confirm or N to cancel: ", pending.Message)
	if !reader.Scan() {
		return command.Result{Status: command.StatusOK, Message: "Delete cancelled."}
	}
	answer := strings.TrimSpace(reader.Text())
	if len(answer) > 0 && (answer[0] == 'Y' || answer[0] == 'y') {
		return d.Execute(command.Delete{ID: pending.PendingID, Confirmed: true})
	}
	return command.Result{Status: command.StatusOK, Message: "Delete cancelled."}
}
