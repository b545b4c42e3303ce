package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaCUE string

// Validation error codes (E200-E209)
const (
	ErrSchemaBroken   = "E200" // embedded schema failed to compile
	ErrDocumentParse  = "E201" // document is not valid JSON
	ErrDocumentShape  = "E202" // document violates the schema
)

// ValidationError represents one schema violation in a document.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validator checks serialized program documents against the embedded
// CUE schema. A Validator is immutable after construction and safe for
// concurrent use.
type Validator struct {
	ctx     *cue.Context
	program cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	program := schema.LookupPath(cue.ParsePath("#Program"))
	if !program.Exists() {
		return nil, fmt.Errorf("schema missing #Program definition")
	}
	return &Validator{ctx: ctx, program: program}, nil
}

// Validate checks a serialized program document.
// Returns all violations found (does not fail-fast); nil means valid.
func (v *Validator) Validate(data []byte) []ValidationError {
	expr, err := cuejson.Extract("document.json", data)
	if err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Code:    ErrDocumentParse,
		}}
	}

	doc := v.ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("build document value: %v", err),
			Code:    ErrDocumentParse,
		}}
	}

	unified := v.program.Unify(doc)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		var errs []ValidationError
		for _, e := range errors.Errors(err) {
			ve := ValidationError{
				Field:   formatPath(e.Path()),
				Message: e.Error(),
				Code:    ErrDocumentShape,
			}
			if pos := e.Position(); pos.IsValid() {
				ve.Line = pos.Line()
			}
			errs = append(errs, ve)
		}
		return errs
	}

	return nil
}

// formatPath joins a CUE error path into dotted form.
func formatPath(path []string) string {
	return strings.Join(path, ".")
}
