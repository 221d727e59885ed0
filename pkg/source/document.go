package source

import "errors"

// Document wraps a raw input payload and its origin. Config, template, and
// manifest bytes all travel through this type between the loader and the
// stages that consume them.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the origin. The
// payload may be empty: a template is arbitrary text, and an empty template
// renders to an empty page.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: origin is required")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
