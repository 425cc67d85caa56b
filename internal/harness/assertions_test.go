package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradekeep/gradekeep/internal/record"
)

func assertionRecords() []record.Record {
	return []record.Record{
		record.New(1, "Ann", "CS", 70.0),
		record.New(2, "Bo", "EE", 95.5),
	}
}

func TestCheckAssertion_RecordExists(t *testing.T) {
	recs := assertionRecords()

	err := checkAssertion(Assertion{
		Type: AssertRecordExists,
		ID:   1,
		Expect: map[string]string{
			"name":      "Ann",
			"programme": "CS",
			"mark":      "70.0",
		},
	}, recs, "")
	assert.NoError(t, err)

	err = checkAssertion(Assertion{
		Type:   AssertRecordExists,
		ID:     1,
		Expect: map[string]string{"mark": "70.5"},
	}, recs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `is "70.0", want "70.5"`)

	err = checkAssertion(Assertion{Type: AssertRecordExists, ID: 404}, recs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record with id 404")

	err = checkAssertion(Assertion{
		Type:   AssertRecordExists,
		ID:     1,
		Expect: map[string]string{"grade": "A"},
	}, recs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "grade"`)
}

func TestCheckAssertion_RecordAbsent(t *testing.T) {
	recs := assertionRecords()

	assert.NoError(t, checkAssertion(Assertion{Type: AssertRecordAbsent, ID: 404}, recs, ""))

	err := checkAssertion(Assertion{Type: AssertRecordAbsent, ID: 2}, recs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record with id 2 is present")
}

func TestCheckAssertion_RecordCount(t *testing.T) {
	recs := assertionRecords()

	assert.NoError(t, checkAssertion(Assertion{Type: AssertRecordCount, Count: 2}, recs, ""))

	err := checkAssertion(Assertion{Type: AssertRecordCount, Count: 3}, recs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds 2 records, want 3")
}

func TestCheckAssertion_OutputContains(t *testing.T) {
	transcript := "> SHOW ALL\nID Name Programme Mark\n1 Ann CS 70.0\n"

	assert.NoError(t, checkAssertion(Assertion{
		Type: AssertOutputContains,
		Text: "1 Ann CS 70.0",
	}, nil, transcript))

	err := checkAssertion(Assertion{
		Type: AssertOutputContains,
		Text: "2 Bo EE 95.5",
	}, nil, transcript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcript does not contain")
}
