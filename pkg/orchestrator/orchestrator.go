package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	internalParser "github.com/flyiniris/go-pagegen/internal/couple/parser"
	"github.com/flyiniris/go-pagegen/internal/fsio"
	internalLoader "github.com/flyiniris/go-pagegen/internal/source/loader"
	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/render"
	"github.com/flyiniris/go-pagegen/pkg/renderers/literal"
	"github.com/flyiniris/go-pagegen/pkg/source"
	"github.com/flyiniris/go-pagegen/pkg/tokens"
)

const (
	// DefaultOutputDir is the root under which per-couple directories are
	// created when a request does not name one.
	DefaultOutputDir = "films"

	// PageFileName, ManifestFileName and ServiceWorkerFileName are the fixed
	// artifact names inside the per-couple directory.
	PageFileName          = "index.html"
	ManifestFileName      = "manifest.json"
	ServiceWorkerFileName = "sw.js"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader shared by the config, template
// and manifest inputs.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom config parser.
func WithParser(parser couple.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger installs a structured logger for pipeline debug output. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress registers a callback invoked with the path of every artifact
// as it is written.
func WithProgress(fn func(path string)) Option {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// Orchestrator coordinates the full pipeline from couple configuration to
// written delivery page. It applies sensible defaults (file loader, JSON/YAML
// parser, literal renderer) while remaining open to dependency injection for
// advanced callers.
type Orchestrator struct {
	loader          source.Loader
	parser          couple.Parser
	registry        *render.Registry
	defaultRenderer string
	logger          *slog.Logger
	progress        func(path string)
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: literal.Name,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of a single generation run.
type Request struct {
	// Config identifies the couple configuration document. Required.
	Config source.Source

	// Template identifies the HTML page template. Required.
	Template source.Source

	// Manifest identifies an optional manifest template rendered with the
	// same token map. Nil skips the manifest artifact.
	Manifest source.Source

	// ServiceWorker is an optional path to a service-worker script copied
	// into the output directory unchanged as sw.js. Empty skips the copy.
	ServiceWorker string

	// OutputDir is the root under which the per-couple directory is created.
	// Empty selects DefaultOutputDir.
	OutputDir string

	// WorkerBase overrides the video origin substituted for {{WORKER_BASE}}.
	// Empty selects tokens.DefaultWorkerBase.
	WorkerBase string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string
}

// Result reports what a successful run produced.
type Result struct {
	// Config is the validated couple configuration the page was built from.
	Config couple.Config

	// Tokens is the token map substituted into the templates.
	Tokens tokens.Map

	// OutputDir is the per-couple directory, <root>/<slug>.
	OutputDir string

	// PagePath is the written page artifact. ManifestPath and
	// ServiceWorkerPath are set only when the request supplied those inputs.
	PagePath          string
	ManifestPath      string
	ServiceWorkerPath string
}

// Generate executes the load → parse → validate → tokenize → render → write
// sequence. Optional artifacts (manifest, service worker) are produced only
// when the request supplies their inputs; their absence is not an error. The
// first failure halts the run as a *StageError.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	if req.Config == nil {
		return Result{}, errors.New("orchestrator: config source is required")
	}
	if req.Template == nil {
		return Result{}, errors.New("orchestrator: template source is required")
	}

	cfg, tm, err := o.prepare(ctx, req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	outputRoot := req.OutputDir
	if outputRoot == "" {
		outputRoot = DefaultOutputDir
	}
	coupleDir := filepath.Join(outputRoot, cfg.Slug)

	result := Result{
		Config:    cfg,
		Tokens:    tm,
		OutputDir: coupleDir,
	}

	pagePath := filepath.Join(coupleDir, PageFileName)
	if err := o.renderArtifact(ctx, renderer, req.Template, tm, pagePath, StageLoadTemplate, StageRenderPage, StageWritePage); err != nil {
		return Result{}, err
	}
	result.PagePath = pagePath

	if req.Manifest != nil {
		manifestPath := filepath.Join(coupleDir, ManifestFileName)
		if err := o.renderArtifact(ctx, renderer, req.Manifest, tm, manifestPath, StageLoadManifest, StageRenderManifest, StageWriteManifest); err != nil {
			return Result{}, err
		}
		result.ManifestPath = manifestPath
	}

	if req.ServiceWorker != "" {
		dst := filepath.Join(coupleDir, ServiceWorkerFileName)
		if err := fsio.CopyFile(req.ServiceWorker, dst); err != nil {
			return Result{}, stageFailure(StageCopyServiceWorker, req.ServiceWorker, err)
		}
		o.emit(dst)
		result.ServiceWorkerPath = dst
	}

	o.logger.Debug("generation complete",
		"slug", cfg.Slug,
		"output_dir", coupleDir,
		"page", result.PagePath)
	return result, nil
}

// Check runs the read-only head of the pipeline: load, parse and validate the
// configuration without touching the filesystem. It returns the typed config
// so callers can report on it.
func (o *Orchestrator) Check(ctx context.Context, configSource source.Source) (couple.Config, error) {
	if ctx == nil {
		return couple.Config{}, errors.New("orchestrator: context is required")
	}
	if configSource == nil {
		return couple.Config{}, errors.New("orchestrator: config source is required")
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.loadConfig(ctx, configSource)
}

func (o *Orchestrator) prepare(ctx context.Context, req Request) (couple.Config, tokens.Map, error) {
	cfg, err := o.loadConfig(ctx, req.Config)
	if err != nil {
		return couple.Config{}, tokens.Map{}, err
	}

	tm, err := tokens.Build(cfg, req.WorkerBase)
	if err != nil {
		return couple.Config{}, tokens.Map{}, stageFailure(StageBuildTokens, "", err)
	}

	o.logger.Debug("config accepted",
		"slug", cfg.Slug,
		"couple", cfg.DisplayNames(),
		"videos", len(cfg.Videos))
	return cfg, tm, nil
}

func (o *Orchestrator) loadConfig(ctx context.Context, configSource source.Source) (couple.Config, error) {
	doc, err := o.loader.Load(ctx, configSource)
	if err != nil {
		return couple.Config{}, stageFailure(StageLoadConfig, configSource.Location(), err)
	}

	raw, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return couple.Config{}, stageFailure(StageParseConfig, doc.Location(), err)
	}

	cfg, err := couple.Build(raw)
	if err != nil {
		return couple.Config{}, stageFailure(StageValidate, doc.Location(), err)
	}
	return cfg, nil
}

// renderArtifact loads a template source, substitutes the token map and
// writes the result, attributing any failure to the matching stage.
func (o *Orchestrator) renderArtifact(ctx context.Context, renderer render.Renderer, tpl source.Source, tm tokens.Map, outPath string, loadStage, renderStage, writeStage Stage) error {
	doc, err := o.loader.Load(ctx, tpl)
	if err != nil {
		return stageFailure(loadStage, tpl.Location(), err)
	}

	rendered, err := renderer.Render(ctx, doc.Raw(), tm)
	if err != nil {
		return stageFailure(renderStage, doc.Location(), err)
	}

	if err := fsio.WriteFile(outPath, rendered); err != nil {
		return stageFailure(writeStage, outPath, err)
	}
	o.emit(outPath)
	return nil
}

func (o *Orchestrator) emit(path string) {
	o.logger.Debug("wrote artifact", "path", path)
	if o.progress != nil {
		o.progress(path)
	}
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(literal.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = literal.Name
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	o.defaultsApplied = true
}
