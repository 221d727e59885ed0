package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flyiniris/go-pagegen/pkg/couple"
	"github.com/flyiniris/go-pagegen/pkg/source"
)

// Parser implements couple.Parser for JSON and YAML payloads.
type Parser struct{}

// Ensure the implementation satisfies the public interface.
var _ couple.Parser = (*Parser)(nil)

// New constructs a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse decodes the document into the raw config mapping. Documents whose
// location ends in .yaml or .yml decode as YAML; everything else decodes as
// JSON with number literals preserved as json.Number.
func (p *Parser) Parse(ctx context.Context, doc source.Document) (couple.Raw, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if isYAML(doc.Location()) {
		return parseYAML(doc)
	}
	return parseJSON(doc)
}

func parseJSON(doc source.Document) (couple.Raw, error) {
	fail := func(err error) (couple.Raw, error) {
		return nil, &couple.ParseError{Location: doc.Location(), Format: "JSON", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(doc.Raw()))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return fail(err)
	}
	if err := expectEOF(dec); err != nil {
		return fail(err)
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return fail(errors.New("top-level value must be an object"))
	}
	return couple.Raw(mapping), nil
}

func parseYAML(doc source.Document) (couple.Raw, error) {
	var value any
	if err := yaml.Unmarshal(doc.Raw(), &value); err != nil {
		return nil, &couple.ParseError{Location: doc.Location(), Format: "YAML", Err: err}
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, &couple.ParseError{Location: doc.Location(), Format: "YAML", Err: errors.New("top-level value must be a mapping")}
	}
	return couple.Raw(mapping), nil
}

// expectEOF verifies nothing follows the top-level value. The fixed message
// covers a clean second value; any other decode failure keeps its own
// diagnostic so the operator sees what actually broke.
func expectEOF(dec *json.Decoder) error {
	switch err := dec.Decode(new(any)); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return errors.New("unexpected trailing content")
	default:
		return fmt.Errorf("after top-level value: %w", err)
	}
}

func isYAML(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
