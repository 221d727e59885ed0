package pagegen

import (
	internalParser "github.com/flyiniris/go-pagegen/internal/couple/parser"
	internalLoader "github.com/flyiniris/go-pagegen/internal/source/loader"
	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/source"
)

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a config parser backed by the internal implementation.
func NewParser() couple.Parser {
	return internalParser.New()
}
