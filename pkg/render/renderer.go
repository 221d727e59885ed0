package render

import (
	"context"

	"github.com/flyiniris/go-pagegen/pkg/tokens"
)

// Renderer substitutes a token map into template content and returns the
// rendered bytes. Content is arbitrary text (an HTML page, a JSON manifest);
// implementations must leave the input slice untouched and must not escape or
// otherwise transform replacement values.
type Renderer interface {
	Name() string
	Render(ctx context.Context, content []byte, tm tokens.Map) ([]byte, error)
}
