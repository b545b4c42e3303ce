package testutil

// FixedTokenGenerator generates the same run token every time.
//
// Unlike pipeline.FixedGenerator which returns tokens in sequence, this
// generator always returns the same token. Useful when a test runs the
// same pipeline repeatedly and wants byte-identical traces.
//
// Thread-safety: FixedTokenGenerator is stateless and safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a new fixed run token generator.
// If token is empty, Generate() returns "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed run token.
//
// Implements pipeline.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
