package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/store"
)

const validDocument = `{
	"name": "cli",
	"expected_input": [],
	"import_statements": [],
	"imports": [],
	"aliases": [],
	"circuits": [],
	"functions": [
		{
			"name": "main",
			"function": {
				"identifier": {"kind": "identifier", "name": "main", "span": {"start": 9, "end": 13}},
				"annotations": [],
				"input": [],
				"const": false,
				"output": {"kind": "primitive", "primitive": "u32"},
				"block": {
					"kind": "block",
					"statements": [
						{
							"kind": "return",
							"expression": {
								"kind": "binary",
								"op": "add",
								"left": {"kind": "implicit", "value": "1", "span": {"start": 22, "end": 23}},
								"right": {"kind": "implicit", "value": "2", "span": {"start": 26, "end": 27}},
								"span": {"start": 22, "end": 27}
							},
							"span": {"start": 21, "end": 28}
						}
					],
					"span": {"start": 19, "end": 30}
				},
				"span": {"start": 0, "end": 30}
			}
		}
	],
	"global_consts": []
}`

// writeDocument drops a document into a temp dir and returns its path.
func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI with args and captures stdout and stderr.
func execute(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCommand()
	var out, errw bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errw)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errw.String(), err
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	_, _, err := execute("--format", "xml", "validate", "doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestValidate_ValidDocumentText(t *testing.T) {
	path := writeDocument(t, validDocument)

	stdout, _, err := execute("validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Document valid")
	assert.Contains(t, stdout, "hash:")
}

func TestValidate_ValidDocumentJSON(t *testing.T) {
	path := writeDocument(t, validDocument)

	stdout, _, err := execute("--format", "json", "validate", path)
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.Equal(t, "ok", response.Status)

	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	hash, ok := data["hash"].(string)
	require.True(t, ok)
	assert.Len(t, hash, 64)
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := execute("validate", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidate_SchemaViolation(t *testing.T) {
	path := writeDocument(t, `{"name": "broken"}`)

	stdout, _, err := execute("validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Validation failed")
}

func TestValidate_SchemaViolationJSON(t *testing.T) {
	path := writeDocument(t, `{"name": "broken"}`)

	stdout, _, err := execute("--format", "json", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.Equal(t, "error", response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "E202", response.Error.Code)
}

func TestReduce_RequiresAtLeastOnePass(t *testing.T) {
	path := writeDocument(t, validDocument)

	_, _, err := execute("reduce", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "at least one --pass")
}

func TestReduce_FoldWritesCanonicalOutput(t *testing.T) {
	path := writeDocument(t, validDocument)

	stdout, stderr, err := execute("reduce", path, "--pass", "fold")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"value":"3"`, "the folded literal lands in the output document")
	assert.NotContains(t, stdout, `"op":"add"`)
	assert.Contains(t, stderr, "1 pass(es)")
}

func TestReduce_OutFlagWritesFile(t *testing.T) {
	path := writeDocument(t, validDocument)
	outPath := filepath.Join(t.TempDir(), "out.json")

	stdout, _, err := execute("reduce", path, "--pass", "fold", "--out", outPath)
	require.NoError(t, err)
	assert.NotContains(t, stdout, `"kind"`, "the document goes to the file, not stdout")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"value":"3"`)
}

func TestReduce_JSONSummary(t *testing.T) {
	path := writeDocument(t, validDocument)

	stdout, _, err := execute("--format", "json", "reduce", path, "--pass", "identity", "--pass", "fold")
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &response))
	assert.Equal(t, "ok", response.Status)

	data, ok := response.Data.(map[string]any)
	require.True(t, ok)
	events, ok := data["events"].([]any)
	require.True(t, ok)
	assert.Len(t, events, 2)
	assert.NotEqual(t, data["input_hash"], data["output_hash"])
}

func TestReduce_RecordsRunInStore(t *testing.T) {
	path := writeDocument(t, validDocument)
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	_, _, err := execute("reduce", path, "--pass", "fold", "--store", dbPath)
	require.NoError(t, err)

	stdout, _, err := execute("history", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok")
	assert.Contains(t, stdout, path)
}

func TestHistory_ShowRunTrace(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	seedStore(t, dbPath)

	stdout, _, err := execute("history", dbPath, "run-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "run run-1 (ok)")
	assert.Contains(t, stdout, "fold")
	assert.Contains(t, stdout, "aaaaaaaaaaaa", "hashes are shortened for display")
}

func TestHistory_Snapshot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	seedStore(t, dbPath)

	stdout, _, err := execute("history", dbPath, "--snapshot", "bbbbbbbbbbbbbbbb")
	require.NoError(t, err)
	assert.Contains(t, stdout, `{"name":"snap"}`)
}

func TestHistory_EmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	stdout, _, err := execute("history", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "no runs recorded")
}

// seedStore writes one finished run with a trace and a snapshot.
func seedStore(t *testing.T, dbPath string) {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "aaaaaaaaaaaaaaaa"))
	require.NoError(t, s.WritePassEvent(ctx, store.PassEvent{
		RunToken: "run-1", Seq: 1, Pass: "fold",
		InputHash: "aaaaaaaaaaaaaaaa", OutputHash: "bbbbbbbbbbbbbbbb",
	}))
	require.NoError(t, s.WriteSnapshot(ctx, "bbbbbbbbbbbbbbbb", []byte(`{"name":"snap"}`)))
	require.NoError(t, s.FinishRun(ctx, "run-1", "bbbbbbbbbbbbbbbb"))
}

func TestHistory_MissingDatabase(t *testing.T) {
	_, _, err := execute("history", filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParsePassFlags(t *testing.T) {
	passList, err := parsePassFlags([]string{"identity", "fold", "rename=x:y"})
	require.NoError(t, err)
	require.Len(t, passList, 3)
	assert.Equal(t, "identity", passList[0].Name)
	assert.Equal(t, "fold", passList[1].Name)
	assert.Equal(t, "rename(x->y)", passList[2].Name)
}

func TestParsePassFlags_Errors(t *testing.T) {
	cases := []struct {
		name string
		flag string
		want string
	}{
		{"unknown pass", "optimize", `unknown pass "optimize"`},
		{"identity with arg", "identity=x", `takes no argument`},
		{"fold with arg", "fold=x", `takes no argument`},
		{"rename without arg", "rename", "requires rename=from:to"},
		{"rename missing to", "rename=x:", "requires rename=from:to"},
		{"rename missing from", "rename=:y", "requires rename=from:to"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePassFlags([]string{tc.flag})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
