package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/gradekeep/gradekeep/internal/command"
	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/view"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError,
		GetExitCode(WrapExitError(ExitCommandError, "bad config", errors.New("boom"))))
}

func TestRenderResult_MessageOnly(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, command.Result{Status: command.StatusOK, Message: "done."})
	assert.Equal(t, "done.\n", buf.String())
}

func TestRenderResult_Table(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, command.Result{
		Status:  command.StatusOK,
		Rows:    []record.Record{record.New(1, "Ann", "CS", 70.0)},
		HasRows: true,
	})
	assert.Equal(t, "ID Name Programme Mark\n1 Ann CS 70.0\n", buf.String())
}

func TestRenderResult_EmptyTableNote(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, command.Result{
		Status:       command.StatusOK,
		HasRows:      true,
		EmptyMessage: "(no matches)",
	})
	assert.Equal(t, "ID Name Programme Mark\n(no matches)\n", buf.String())
}

func TestRenderResult_Summary(t *testing.T) {
	var buf bytes.Buffer
	s := view.Summary{
		Count:       2,
		Average:     82.75,
		Highest:     95.5,
		HighestName: "Bo",
		Lowest:      70.0,
		LowestName:  "Ann",
	}
	RenderResult(&buf, command.Result{Status: command.StatusOK, Summary: &s})

	want := "SUMMARY\n" +
		"Total students: 2\n" +
		"Average mark: 82.75\n" +
		"Highest: 95.5 (Bo)\n" +
		"Lowest : 70.0 (Ann)\n"
	assert.Equal(t, want, buf.String())
}

func TestHelpText_Golden(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, command.Result{Status: command.StatusOK, ShowHelp: true})

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "help", buf.Bytes())
}
