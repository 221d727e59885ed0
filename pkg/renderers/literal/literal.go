// Package literal provides the default renderer: sequential replacement of
// {{TOKEN}} placeholders with their values.
package literal

import (
	"bytes"
	"context"

	"github.com/flyiniris/go-pagegen/pkg/render"
	"github.com/flyiniris/go-pagegen/pkg/tokens"
)

// Name is the registry name of this renderer.
const Name = "literal"

// Renderer replaces each token map entry's placeholder with its value, one
// entry at a time in map order. Values are inserted verbatim with no escaping.
// The pass is order-dependent: a value containing a later entry's placeholder
// is substituted again when that entry is reached. Placeholders outside the
// map are left untouched.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the literal renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) Render(ctx context.Context, content []byte, tm tokens.Map) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	out := append([]byte(nil), content...)
	for _, entry := range tm.Entries() {
		out = bytes.ReplaceAll(out, []byte(entry.Placeholder()), []byte(entry.Value))
	}
	return out, nil
}
