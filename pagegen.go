// Package pagegen generates static HTML delivery pages for couples' films: a
// JSON (or YAML) configuration plus an HTML template in, a per-couple page
// directory out. The root package re-exports the common entry points; the
// pipeline pieces live under pkg/ for callers that need to compose them.
package pagegen

import (
	"context"

	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/orchestrator"
	"github.com/flyiniris/go-pagegen/pkg/source"
	"github.com/flyiniris/go-pagegen/pkg/tokens"
)

// Request describes the inputs of a single generation run; alias exported via
// the root package for convenience.
type Request = orchestrator.Request

// Result reports what a successful run produced.
type Result = orchestrator.Result

// Config is the validated couple record a run generates from.
type Config = couple.Config

// TokenMap is the ordered placeholder → replacement mapping substituted into
// templates.
type TokenMap = tokens.Map

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that run multiple generations with shared wiring.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate runs the full pipeline for a single couple page. It is the
// simplest entry point for callers that just want the artifacts written.
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, req)
}

// Check loads, parses and validates a configuration without writing anything,
// returning the typed config on success.
func Check(ctx context.Context, configSource source.Source, options ...orchestrator.Option) (Config, error) {
	gen := orchestrator.New(options...)
	return gen.Check(ctx, configSource)
}
