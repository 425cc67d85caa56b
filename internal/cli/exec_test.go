package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecInsertPersists(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "records.txt")
	require.NoError(t, os.WriteFile(db, nil, 0o644))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"exec", "--db", db,
		`INSERT ID=1 Name="Ann" Programme="CS" Mark=70.0`})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "A new record with ID=1 is successfully inserted.")

	data, err := os.ReadFile(db)
	require.NoError(t, err)
	assert.Equal(t, "1\tAnn\tCS\t70.0\n", string(data))
}

func TestExecShowAllReadsDatabase(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "records.txt")
	require.NoError(t, os.WriteFile(db, []byte("1\tAnn\tCS\t70.0\n2\tBo\tEE\t95.5\n"), 0o644))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"exec", "--db", db, "SHOW ALL SORT BY MARK DESC"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "2 Bo EE 95.5\n1 Ann CS 70.0\n")
}

func TestExecDeleteRequiresYes(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "records.txt")
	require.NoError(t, os.WriteFile(db, []byte("1\tAnn\tCS\t70.0\n"), 0o644))

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"exec", "--db", db, "DELETE ID=1"})
	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	// The record is untouched without --yes.
	data, readErr := os.ReadFile(db)
	require.NoError(t, readErr)
	assert.Equal(t, "1\tAnn\tCS\t70.0\n", string(data))

	root = NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"exec", "--db", db, "--yes", "DELETE ID=1"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "The record with ID=1 is successfully deleted.")

	data, readErr = os.ReadFile(db)
	require.NoError(t, readErr)
	assert.Equal(t, "", string(data))
}

func TestExecFailureExitCode(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"exec", "QUERY ID=404"})
	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestExecParseErrorExitCode(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"exec", "INSERT Name=\"Ann\""})
	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "Missing ID=.")
}
