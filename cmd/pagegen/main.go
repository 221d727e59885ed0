package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	pagegen "github.com/flyiniris/go-pagegen"
	"github.com/flyiniris/go-pagegen/internal/preview"
	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/orchestrator"
	"github.com/flyiniris/go-pagegen/pkg/source"
	"github.com/flyiniris/go-pagegen/pkg/tokens"
)

const remoteFetchTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "", "Path or URL of the couple config JSON file")
	templatePath := flag.String("template", "", "Path or URL of the couple-page.html template")
	manifestPath := flag.String("manifest", "", "Path or URL of the manifest.json template (optional)")
	swPath := flag.String("sw", "", "Path to sw.js service worker file (optional)")
	outputDir := flag.String("output-dir", orchestrator.DefaultOutputDir, "Output directory for generated pages")
	workerBase := flag.String("worker-base", tokens.DefaultWorkerBase, "Base URL for the video Worker")
	openPreview := flag.Bool("preview", false, "Open the generated page in the default browser")
	checkOnly := flag.Bool("check", false, "Validate the config and exit without writing anything")
	verbose := flag.Bool("verbose", false, "Enable debug logging on stderr")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s --config couple.json --template couple-page.html [flags]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(out, "Generate a couple's film delivery page from a template and config JSON.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if strings.TrimSpace(*configPath) == "" {
		fmt.Fprintln(os.Stderr, "Error: --config is required")
		flag.Usage()
		os.Exit(2)
	}
	if !*checkOnly && strings.TrimSpace(*templatePath) == "" {
		fmt.Fprintln(os.Stderr, "Error: --template is required")
		flag.Usage()
		os.Exit(2)
	}

	options := []orchestrator.Option{
		orchestrator.WithLoader(pagegen.NewLoader(source.WithHTTPFallback(remoteFetchTimeout))),
		orchestrator.WithProgress(func(path string) {
			fmt.Printf("  Wrote %s\n", path)
		}),
	}
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		options = append(options, orchestrator.WithLogger(slog.New(handler)))
	}

	orch := pagegen.NewOrchestrator(options...)
	ctx := context.Background()

	if *checkOnly {
		cfg, err := orch.Check(ctx, parseSource(*configPath))
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		fmt.Printf("Config OK: %s (%s), %d videos\n", cfg.DisplayNames(), cfg.Slug, len(cfg.Videos))
		for _, warning := range couple.Lint(cfg) {
			fmt.Fprintf(os.Stderr, "  Warning: %s\n", warning)
		}
		return
	}

	result, err := orch.Generate(ctx, pagegen.Request{
		Config:        parseSource(*configPath),
		Template:      parseSource(*templatePath),
		Manifest:      optionalSource(*manifestPath),
		ServiceWorker: *swPath,
		OutputDir:     *outputDir,
		WorkerBase:    *workerBase,
	})
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	fmt.Printf("\nGenerated page for %s at %s\n", result.Config.DisplayNames(), result.PagePath)

	if *openPreview {
		url, err := preview.FileURL(result.PagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Preview unavailable: %v\n", err)
			return
		}
		fmt.Printf("  Opening in browser: %s\n", url)
		if err := preview.Open(url); err != nil {
			fmt.Fprintf(os.Stderr, "  Preview unavailable: %v\n", err)
		}
	}
}

// reportError prints an operator-facing failure line (or block) on stderr.
// Stage errors get the message shape operators already know; anything else
// falls through to a generic Error line.
func reportError(err error) {
	var stageErr *orchestrator.StageError
	if !errors.As(err, &stageErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	switch stageErr.Stage {
	case orchestrator.StageLoadConfig:
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: Config file not found: %s\n", stageErr.Path)
			return
		}
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", stageErr.Err)

	case orchestrator.StageParseConfig:
		var parseErr *couple.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "Error: Invalid %s in config file: %v\n", parseErr.Format, parseErr.Err)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", stageErr.Err)

	case orchestrator.StageValidate:
		var validationErr *couple.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintln(os.Stderr, "Config validation failed:")
			for _, message := range validationErr.Messages {
				fmt.Fprintf(os.Stderr, "  - %s\n", message)
			}
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", stageErr.Err)

	case orchestrator.StageLoadTemplate:
		reportReadFailure("template", stageErr)

	case orchestrator.StageLoadManifest:
		reportReadFailure("manifest template", stageErr)

	case orchestrator.StageWritePage:
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", orchestrator.PageFileName, stageErr.Err)

	case orchestrator.StageWriteManifest:
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", orchestrator.ManifestFileName, stageErr.Err)

	case orchestrator.StageCopyServiceWorker:
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: Service worker not found: %s\n", stageErr.Path)
			return
		}
		fmt.Fprintf(os.Stderr, "Error copying service worker: %v\n", stageErr.Err)

	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func reportReadFailure(role string, stageErr *orchestrator.StageError) {
	if errors.Is(stageErr.Err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %s not found: %s\n", role, stageErr.Path)
		return
	}
	fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", role, stageErr.Err)
}

func parseSource(raw string) source.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return source.FromURL(path)
	}
	return source.FromFile(path)
}

func optionalSource(raw string) source.Source {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return parseSource(raw)
}
