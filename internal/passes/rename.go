package passes

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/reducer"
)

// Rename rewrites every identifier named From to To, keeping each
// occurrence's span. It is a blunt, scope-unaware rewrite. Callers that
// need binding-aware renames run it after resolution has made names unique.
type Rename struct {
	reducer.Base

	From string
	To   string
}

// NewRename returns a pass renaming from to to.
func NewRename(from, to string) *Rename {
	return &Rename{From: from, To: to}
}

func (r *Rename) ReduceIdentifier(identifier *ast.Identifier) (*ast.Identifier, error) {
	if identifier.Name == r.From {
		return ast.NewIdentifier(r.To, identifier.Span()), nil
	}
	return r.Base.ReduceIdentifier(identifier)
}
