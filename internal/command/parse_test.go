package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradekeep/gradekeep/internal/view"
)

func TestParse_Insert(t *testing.T) {
	cmd, err := Parse(`INSERT ID=2301234 Name="Brian Goh" Programme="Digital Supply Chain" Mark=88.8`)
	require.NoError(t, err)

	ins, okType := cmd.(Insert)
	require.True(t, okType, "got %T", cmd)
	assert.Equal(t, int32(2301234), ins.Rec.ID)
	assert.Equal(t, "Brian Goh", ins.Rec.Name)
	assert.Equal(t, "Digital Supply Chain", ins.Rec.Programme)
	assert.Equal(t, float32(88.8), ins.Rec.Mark)
}

func TestParse_InsertMissingKey(t *testing.T) {
	_, err := Parse(`INSERT ID=1 Programme="CS" Mark=50`)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrKindMissingKey, pe.Kind)
	assert.Equal(t, "Name", pe.Key)
}

func TestParse_InsertInvalidID(t *testing.T) {
	_, err := Parse(`INSERT ID=abc Name="A" Programme="B" Mark=50`)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrKindInvalidNumber, pe.Kind)
}

func TestParse_UpdatePartial(t *testing.T) {
	cmd, err := Parse(`update id=7 Mark=91.5`)
	require.NoError(t, err)

	up, okType := cmd.(Update)
	require.True(t, okType, "got %T", cmd)
	assert.Equal(t, int32(7), up.ID)
	assert.Nil(t, up.Patch.Name)
	assert.Nil(t, up.Patch.Programme)
	require.NotNil(t, up.Patch.Mark)
	assert.Equal(t, float32(91.5), *up.Patch.Mark)
}

func TestParse_Delete(t *testing.T) {
	cmd, err := Parse("DELETE ID=3")
	require.NoError(t, err)
	assert.Equal(t, Delete{ID: 3}, cmd)
}

func TestParse_ShowAllVariants(t *testing.T) {
	cases := []struct {
		line string
		want ShowAll
	}{
		{"SHOW ALL", ShowAll{Field: view.SortNone, Direction: view.Ascending}},
		{"show all sort by id", ShowAll{Field: view.SortByID, Direction: view.Ascending}},
		{"SHOW ALL SORT BY ID DESC", ShowAll{Field: view.SortByID, Direction: view.Descending}},
		{"SHOW ALL SORT BY MARK ASC", ShowAll{Field: view.SortByMark, Direction: view.Ascending}},
		{"SHOW ALL SORT BY MARK DESC", ShowAll{Field: view.SortByMark, Direction: view.Descending}},
	}
	for _, tc := range cases {
		cmd, err := Parse(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, cmd, tc.line)
	}
}

func TestParse_ShowAllNotShadowedByLongerWord(t *testing.T) {
	cmd, err := Parse("SHOW ALLOCATE")
	require.NoError(t, err)
	assert.IsType(t, Unknown{}, cmd)
}

func TestParse_ShowSummary(t *testing.T) {
	cmd, err := Parse("SHOW SUMMARY")
	require.NoError(t, err)
	assert.Equal(t, ShowSummary{}, cmd)
}

func TestParse_FindName(t *testing.T) {
	cmd, err := Parse(`FIND NAME "brian"`)
	require.NoError(t, err)
	assert.Equal(t, Find{Field: view.SearchByName, Needle: "brian"}, cmd)
}

func TestParse_FindProgrammeUnquoted(t *testing.T) {
	cmd, err := Parse("FIND PROGRAMME Digital Supply Chain")
	require.NoError(t, err)
	assert.Equal(t, Find{Field: view.SearchByProgramme, Needle: "Digital Supply Chain"}, cmd)
}

func TestParse_OpenQuotedPath(t *testing.T) {
	cmd, err := Parse(`OPEN "my records.txt"`)
	require.NoError(t, err)
	assert.Equal(t, Open{Path: "my records.txt"}, cmd)
}

func TestParse_SaveWithoutPath(t *testing.T) {
	cmd, err := Parse("SAVE")
	require.NoError(t, err)
	assert.Equal(t, Save{Path: ""}, cmd)
}

func TestParse_ImportExport(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"IMPORT CSV data.csv", ImportCSV{Path: "data.csv"}},
		{"EXPORT CSV out.csv", ExportCSV{Path: "out.csv"}},
		{"EXPORT SQL dump.sql", ExportSQL{Path: "dump.sql"}},
		{"EXPORT DB records.db", ExportDB{Path: "records.db"}},
		{"IMPORT DB records.db", ImportDB{Path: "records.db"}},
	}
	for _, tc := range cases {
		cmd, err := Parse(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, cmd, tc.line)
	}
}

func TestParse_ExitAndQuit(t *testing.T) {
	for _, line := range []string{"EXIT", "quit", "  Exit  "} {
		cmd, err := Parse(line)
		require.NoError(t, err, line)
		assert.Equal(t, Exit{}, cmd, line)
	}
}

func TestParse_UnknownVerb(t *testing.T) {
	cmd, err := Parse("FROBNICATE ID=1")
	require.NoError(t, err)
	assert.Equal(t, Unknown{Verb: "FROBNICATE"}, cmd)
}

func TestParse_BackupAndHelp(t *testing.T) {
	cmd, err := Parse("BACKUP")
	require.NoError(t, err)
	assert.Equal(t, Backup{}, cmd)

	cmd, err = Parse("help")
	require.NoError(t, err)
	assert.Equal(t, Help{}, cmd)
}
