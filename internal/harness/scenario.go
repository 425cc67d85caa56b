package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario: command lines executed in
// order against a fresh dispatcher, followed by assertions on the
// final table and transcript.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description"`

	// Setup contains command lines run before the main flow. They are
	// expected to succeed; a failing setup command aborts the run.
	Setup []string `yaml:"setup,omitempty"`

	// Flow contains the main steps. Each step is a command line with an
	// optional expect clause.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final table contents and the transcript.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// FlowStep is one command line in the flow, with optional validation
// of its outcome.
type FlowStep struct {
	// Command is the line handed to the dispatcher, verbatim except for
	// $WORK substitution.
	Command string `yaml:"command"`

	// Expect validates the step outcome. Nil means the step only has to
	// execute; its status is not checked.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a flow step.
type ExpectClause struct {
	// Status is "ok" or "error".
	Status string `yaml:"status"`

	// Contains is a substring the step's rendered output must include.
	// Empty means no output check.
	Contains string `yaml:"contains,omitempty"`
}

// Assertion validates the final state after the flow has run.
type Assertion struct {
	// Type selects the check:
	//   - "record_exists": a record with ID is present, fields match Expect
	//   - "record_absent": no record with ID is present
	//   - "record_count": the table holds exactly Count records
	//   - "output_contains": the transcript includes Text
	Type string `yaml:"type"`

	// ID is the record id (record_exists, record_absent).
	ID int32 `yaml:"id,omitempty"`

	// Expect maps field name to expected rendering (record_exists).
	// Supported fields: name, programme, mark. Subset match; mark is
	// compared against its one-decimal rendering.
	Expect map[string]string `yaml:"expect,omitempty"`

	// Count is the expected table size (record_count).
	Count int `yaml:"count,omitempty"`

	// Text is the required transcript substring (output_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertRecordExists   = "record_exists"
	AssertRecordAbsent   = "record_absent"
	AssertRecordCount    = "record_count"
	AssertOutputContains = "output_contains"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos like "assertion:" fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for i, line := range s.Setup {
		if line == "" {
			return fmt.Errorf("setup[%d]: command line is empty", i)
		}
	}
	for i, step := range s.Flow {
		if step.Command == "" {
			return fmt.Errorf("flow[%d]: command is required", i)
		}
		if step.Expect != nil {
			switch step.Expect.Status {
			case "ok", "error":
			default:
				return fmt.Errorf("flow[%d].expect: status must be \"ok\" or \"error\", got %q",
					i, step.Expect.Status)
			}
		}
	}
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertRecordExists:
		if a.ID == 0 {
			return fmt.Errorf("assertions[%d]: id is required for record_exists", index)
		}
	case AssertRecordAbsent:
		if a.ID == 0 {
			return fmt.Errorf("assertions[%d]: id is required for record_absent", index)
		}
	case AssertRecordCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for record_count", index)
		}
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_contains", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
