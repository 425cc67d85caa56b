package harness

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gradekeep/gradekeep/internal/cli"
	"github.com/gradekeep/gradekeep/internal/command"
	"github.com/gradekeep/gradekeep/internal/persist"
	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/store"
	"github.com/gradekeep/gradekeep/internal/testutil"
)

// workdirToken is the placeholder scenarios use for the per-run
// working directory.
const workdirToken = "$WORK"

// scenarioEpoch is the fixed clock time scenarios run under, chosen so
// BACKUP filenames in golden transcripts never change.
var scenarioEpoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// Result holds the outcome of one scenario run.
type Result struct {
	// Passed is true when every expect clause and assertion held.
	Passed bool

	// Failures lists every expect or assertion violation, in order.
	Failures []string

	// Transcript is the full rendered session, with the working
	// directory scrubbed back to $WORK.
	Transcript string

	// Records is the final table contents, in insertion order.
	Records []record.Record
}

// Run executes a scenario against a fresh dispatcher. File paths in
// commands should use $WORK, which is replaced with dir before
// execution. Setup failures and unparseable scenarios return an
// error; expect and assertion failures are reported in the Result.
func Run(scenario *Scenario, dir string) (*Result, error) {
	st := store.New()
	dispatcher := command.NewDispatcher(st, &persist.Session{}, testutil.NewFixedClock(scenarioEpoch))

	result := &Result{}
	var transcript bytes.Buffer

	for i, line := range scenario.Setup {
		res, _ := runLine(dispatcher, line, dir)
		if res.Status != command.StatusOK {
			return nil, fmt.Errorf("setup[%d] %q failed: %s", i, line, res.Message)
		}
	}

	for i, step := range scenario.Flow {
		res, rendered := runLine(dispatcher, step.Command, dir)
		fmt.Fprintf(&transcript, "> %s\n", step.Command)
		transcript.WriteString(scrub(rendered, dir))

		if step.Expect == nil {
			continue
		}
		wantOK := step.Expect.Status == "ok"
		if gotOK := res.Status == command.StatusOK; gotOK != wantOK {
			result.Failures = append(result.Failures,
				fmt.Sprintf("flow[%d] %q: status %q, want %q", i, step.Command, statusName(res.Status), step.Expect.Status))
		}
		if step.Expect.Contains != "" && !strings.Contains(scrub(rendered, dir), step.Expect.Contains) {
			result.Failures = append(result.Failures,
				fmt.Sprintf("flow[%d] %q: output does not contain %q", i, step.Command, step.Expect.Contains))
		}
	}

	result.Transcript = transcript.String()
	result.Records = st.Snapshot()

	for i, assertion := range scenario.Assertions {
		if err := checkAssertion(assertion, result.Records, result.Transcript); err != nil {
			result.Failures = append(result.Failures,
				fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	result.Passed = len(result.Failures) == 0
	return result, nil
}

// runLine executes one command line, auto-confirming deletes, and
// returns the outcome plus its rendered output.
func runLine(d *command.Dispatcher, line, dir string) (command.Result, string) {
	res := d.Run(strings.ReplaceAll(line, workdirToken, dir))
	if res.NeedsConfirm {
		res = d.Execute(command.Delete{ID: res.PendingID, Confirmed: true})
	}
	var out bytes.Buffer
	cli.RenderResult(&out, res)
	return res, out.String()
}

func scrub(s, dir string) string {
	return strings.ReplaceAll(s, dir, workdirToken)
}

func statusName(s command.Status) string {
	if s == command.StatusOK {
		return "ok"
	}
	return "error"
}
