package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios execute a pass sequence over a program document and assert on
// the resulting trace.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Document is the path to the serialized program JSON.
	// Relative paths resolve against the scenario file location.
	Document string `yaml:"document"`

	// Passes lists the rewrites to run, in order.
	Passes []PassStep `yaml:"passes"`

	// Assertions validate the run trace.
	// Supported types: hash_unchanged, hash_changed, pass_count
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// Token is an optional fixed run token for deterministic traces.
	// If empty, defaults to "run-" + Name.
	Token string `yaml:"token,omitempty"`
}

// PassStep names one pass in the scenario's sequence.
type PassStep struct {
	// Pass is the pass kind: "identity", "fold", or "rename".
	Pass string `yaml:"pass"`

	// From and To configure a rename pass. Required for "rename",
	// rejected for other kinds.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

// Assertion validates one property of a completed run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "hash_unchanged": the run's output hash equals its input hash
	// - "hash_changed": the run's output hash differs from its input hash
	// - "pass_count": the trace holds exactly Count events
	Type string `yaml:"type"`

	// Count is the expected number of trace events (used by pass_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertHashUnchanged = "hash_unchanged"
	AssertHashChanged   = "hash_changed"
	AssertPassCount     = "pass_count"
)

// Pass kind constants.
const (
	PassIdentity = "identity"
	PassFold     = "fold"
	PassRename   = "rename"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
//
// The document path is resolved relative to the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Document != "" && !filepath.IsAbs(scenario.Document) {
		scenario.Document = filepath.Join(filepath.Dir(path), scenario.Document)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Document == "" {
		return fmt.Errorf("document is required")
	}
	if _, err := os.Stat(s.Document); os.IsNotExist(err) {
		return fmt.Errorf("document file not found: %s", s.Document)
	}

	if len(s.Passes) == 0 {
		return fmt.Errorf("passes list is required and must be non-empty")
	}

	for i, step := range s.Passes {
		if err := validatePassStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validatePassStep validates a single pass step based on its kind.
func validatePassStep(index int, step *PassStep) error {
	switch step.Pass {
	case PassIdentity, PassFold:
		if step.From != "" || step.To != "" {
			return fmt.Errorf("passes[%d]: from/to are only valid for rename", index)
		}
	case PassRename:
		if step.From == "" || step.To == "" {
			return fmt.Errorf("passes[%d]: rename requires from and to", index)
		}
	case "":
		return fmt.Errorf("passes[%d]: pass is required", index)
	default:
		return fmt.Errorf("passes[%d]: unknown pass kind %q", index, step.Pass)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertHashUnchanged, AssertHashChanged:
	case AssertPassCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for pass_count", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
