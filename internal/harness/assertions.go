package harness

import "fmt"

// applyAssertion checks one assertion against a completed run.
func applyAssertion(index int, a *Assertion, result *Result) error {
	switch a.Type {
	case AssertHashUnchanged:
		input, output, err := runEndpoints(result)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		if input != output {
			return fmt.Errorf("assertions[%d]: hash_unchanged: input %s != output %s", index, input, output)
		}
	case AssertHashChanged:
		input, output, err := runEndpoints(result)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
		if input == output {
			return fmt.Errorf("assertions[%d]: hash_changed: hash %s did not change", index, input)
		}
	case AssertPassCount:
		if len(result.Events) != a.Count {
			return fmt.Errorf("assertions[%d]: pass_count: got %d events, want %d", index, len(result.Events), a.Count)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

// runEndpoints returns the first input hash and last output hash of a trace.
func runEndpoints(result *Result) (input, output string, err error) {
	if len(result.Events) == 0 {
		return "", "", fmt.Errorf("empty trace")
	}
	return result.Events[0].InputHash, result.Events[len(result.Events)-1].OutputHash, nil
}
