package couple

import (
	"context"

	"github.com/flyiniris/go-pagegen/pkg/source"
)

// Parser decodes a loaded config document into the raw mapping Validate
// inspects. The built-in implementation understands JSON and, for documents
// whose location carries a .yaml/.yml extension, YAML.
type Parser interface {
	Parse(ctx context.Context, doc source.Document) (Raw, error)
}
