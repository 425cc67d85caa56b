package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExpectViolationsReported(t *testing.T) {
	s := &Scenario{
		Name:        "expect-violations",
		Description: "status and contains mismatches land in Failures",
		Flow: []FlowStep{
			{
				Command: "QUERY ID=404",
				Expect:  &ExpectClause{Status: "ok"},
			},
			{
				Command: "SHOW ALL",
				Expect:  &ExpectClause{Status: "ok", Contains: "no such text"},
			},
		},
	}

	result, err := Run(s, t.TempDir())
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 2)
	assert.Contains(t, result.Failures[0], `status "error", want "ok"`)
	assert.Contains(t, result.Failures[1], `does not contain "no such text"`)
}

func TestRun_SetupFailureAborts(t *testing.T) {
	s := &Scenario{
		Name:        "bad-setup",
		Description: "a failing setup command aborts the run",
		Setup:       []string{"QUERY ID=404"},
		Flow:        []FlowStep{{Command: "SHOW ALL"}},
	}

	_, err := Run(s, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setup[0]")
}

func TestRun_WorkdirSubstitution(t *testing.T) {
	dir := t.TempDir()
	s := &Scenario{
		Name:        "workdir",
		Description: "$WORK resolves to the run directory and is scrubbed in the transcript",
		Setup:       []string{`INSERT ID=1 Name="Ann" Programme="CS" Mark=70.0`},
		Flow: []FlowStep{
			{
				Command: "SAVE $WORK/records.txt",
				Expect:  &ExpectClause{Status: "ok"},
			},
		},
	}

	result, err := Run(s, dir)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.NotContains(t, result.Transcript, dir)
	assert.Contains(t, result.Transcript, "> SAVE $WORK/records.txt")

	_, statErr := os.Stat(filepath.Join(dir, "records.txt"))
	assert.NoError(t, statErr)
}

func TestRun_AutoConfirmsDelete(t *testing.T) {
	s := &Scenario{
		Name:        "auto-confirm",
		Description: "DELETE completes without an interactive prompt",
		Setup:       []string{`INSERT ID=5 Name="Ann" Programme="CS" Mark=70.0`},
		Flow: []FlowStep{
			{
				Command: "DELETE ID=5",
				Expect:  &ExpectClause{Status: "ok", Contains: "successfully deleted"},
			},
		},
		Assertions: []Assertion{
			{Type: AssertRecordAbsent, ID: 5},
			{Type: AssertRecordCount, Count: 0},
		},
	}

	result, err := Run(s, t.TempDir())
	require.NoError(t, err)
	assert.True(t, result.Passed, "failures: %v", result.Failures)
	assert.Empty(t, result.Records)
}

func TestRun_FixedClockBackupName(t *testing.T) {
	s := &Scenario{
		Name:        "backup-name",
		Description: "backup filenames are stable under the scenario clock",
		Setup: []string{
			`INSERT ID=1 Name="Ann" Programme="CS" Mark=70.0`,
			"SAVE $WORK/records.txt",
		},
		Flow: []FlowStep{
			{
				Command: "BACKUP",
				Expect:  &ExpectClause{Status: "ok", Contains: "records.bak-20260102-030405.txt"},
			},
		},
	}

	result, err := Run(s, t.TempDir())
	require.NoError(t, err)
	assert.True(t, result.Passed, "failures: %v", result.Failures)
}
