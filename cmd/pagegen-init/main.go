package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	"github.com/flyiniris/go-pagegen/internal/fsio"
	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/scaffold"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func main() {
	outPath := flag.String("out", "", "Output path for the config (default <slug>.<format>)")
	format := flag.String("format", "json", "Config encoding: json or yaml")
	assetsDir := flag.String("with-assets", "", "Also write the starter template bundle into this directory")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(out, "Interactively scaffold a couple config for the page generator.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *format != "json" && *format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q (want json or yaml)\n", *format)
		os.Exit(2)
	}

	raw, err := collect()
	if err != nil {
		exitPromptFailure(err)
	}

	// The prompts already constrain each answer, but the config is checked
	// with the same validator the generator runs before anything is written.
	cfg, err := couple.Build(raw)
	if err != nil {
		var validationErr *couple.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintln(os.Stderr, "Config validation failed:")
			for _, message := range validationErr.Messages {
				fmt.Fprintf(os.Stderr, "  - %s\n", message)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range couple.Lint(cfg) {
		fmt.Fprintf(os.Stderr, "  Warning: %s\n", warning)
	}

	path := strings.TrimSpace(*outPath)
	if path == "" {
		path = cfg.Slug + "." + *format
	}

	data, err := encodeConfig(raw, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	if err := fsio.WriteFile(path, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Wrote %s\n", path)

	if *assetsDir != "" {
		if err := scaffold.WriteTo(*assetsDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing starter assets: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Wrote starter assets to %s\n", *assetsDir)
	}

	fmt.Printf("\nCreated config for %s (%s)\n", cfg.DisplayNames(), cfg.Slug)
	templatePath := scaffold.PageTemplateName
	if *assetsDir != "" {
		templatePath = filepath.Join(*assetsDir, scaffold.PageTemplateName)
	}
	fmt.Printf("Generate the page with:\n  pagegen --config %s --template %s\n", path, templatePath)
}

// collect walks the interactive flow and assembles the raw config mapping.
func collect() (couple.Raw, error) {
	slug, err := askInput("Slug (URL path segment):", "",
		"Lowercase letters, numbers, and hyphens, e.g. ana-luis", survey.Required, slugAnswer)
	if err != nil {
		return nil, err
	}

	name1, err := askInput("First partner's name:", "", "", survey.Required)
	if err != nil {
		return nil, err
	}
	name2, err := askInput("Second partner's name:", "", "", survey.Required)
	if err != nil {
		return nil, err
	}

	date, err := askInput("Wedding date, long form:", "",
		"Shown on the page, e.g. August 31, 2025", survey.Required)
	if err != nil {
		return nil, err
	}
	dateShort, err := askInput("Wedding date, short form:", "",
		"Compact form, e.g. 08.31.2025", survey.Required)
	if err != nil {
		return nil, err
	}

	var videos []any
	for i := 1; ; i++ {
		fmt.Printf("Video %d\n", i)

		video, err := collectVideo(i)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)

		more, err := askConfirm("Add another video?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return couple.Raw{
		"slug":       slug,
		"names":      []any{name1, name2},
		"date":       date,
		"date_short": dateShort,
		"videos":     videos,
	}, nil
}

func collectVideo(index int) (map[string]any, error) {
	defaultID := ""
	if index == 1 {
		defaultID = "feature"
	}

	id, err := askInput("  id:", defaultID,
		"Identifier the video Worker serves this file under", survey.Required)
	if err != nil {
		return nil, err
	}
	title, err := askInput("  title:", "", "", survey.Required)
	if err != nil {
		return nil, err
	}
	category, err := askInput("  category:", "",
		"e.g. feature, teaser, ceremony, speeches", survey.Required)
	if err != nil {
		return nil, err
	}
	duration, err := askInput("  duration (seconds):", "", "", survey.Required, numberAnswer)
	if err != nil {
		return nil, err
	}
	order, err := askInput("  order:", strconv.Itoa(index), "", survey.Required, numberAnswer)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"id":       id,
		"title":    title,
		"category": category,
		"duration": toNumber(duration),
		"order":    toNumber(order),
	}, nil
}

func askInput(message, defaultValue, help string, validators ...survey.Validator) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
		Help:    help,
	}
	opts := make([]survey.AskOpt, 0, len(validators))
	for _, validator := range validators {
		opts = append(opts, survey.WithValidator(validator))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func askConfirm(message string, defaultValue bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, err
	}
	return out, nil
}

func slugAnswer(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return errors.New("slug must be text")
	}
	if !slugPattern.MatchString(strings.TrimSpace(value)) {
		return errors.New("use only lowercase letters, numbers, and hyphens")
	}
	return nil
}

func numberAnswer(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return errors.New("enter a number")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

// toNumber keeps whole seconds as integers so the serialized config reads the
// way hand-written ones do.
func toNumber(value string) any {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return trimmed
	}
	return f
}

func encodeConfig(raw couple.Raw, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(map[string]any(raw))
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// exitPromptFailure ends the run after a prompt error. Interrupts and closed
// input exit quietly; anything else reports first.
func exitPromptFailure(err error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
