package harness

import (
	"fmt"
	"strings"

	"github.com/gradekeep/gradekeep/internal/record"
)

// checkAssertion evaluates one assertion against the final table and
// transcript. A nil return means the assertion held.
func checkAssertion(a Assertion, records []record.Record, transcript string) error {
	switch a.Type {
	case AssertRecordExists:
		rec, found := findRecord(records, a.ID)
		if !found {
			return fmt.Errorf("record_exists: no record with id %d", a.ID)
		}
		return matchFields(rec, a.Expect)
	case AssertRecordAbsent:
		if _, found := findRecord(records, a.ID); found {
			return fmt.Errorf("record_absent: record with id %d is present", a.ID)
		}
		return nil
	case AssertRecordCount:
		if len(records) != a.Count {
			return fmt.Errorf("record_count: table holds %d records, want %d", len(records), a.Count)
		}
		return nil
	case AssertOutputContains:
		if !strings.Contains(transcript, a.Text) {
			return fmt.Errorf("output_contains: transcript does not contain %q", a.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func findRecord(records []record.Record, id int32) (record.Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return record.Record{}, false
}

// matchFields performs a subset match of the expect map against one
// record. Marks compare against their one-decimal rendering so YAML
// never has to express a float32 exactly.
func matchFields(rec record.Record, expect map[string]string) error {
	for field, want := range expect {
		var got string
		switch field {
		case "name":
			got = rec.Name
		case "programme":
			got = rec.Programme
		case "mark":
			got = record.FormatMark(rec.Mark)
		default:
			return fmt.Errorf("record_exists: unknown field %q", field)
		}
		if got != want {
			return fmt.Errorf("record_exists: id %d field %s is %q, want %q", rec.ID, field, got, want)
		}
	}
	return nil
}
