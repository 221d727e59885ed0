// Package tokens builds the ordered placeholder map substituted into page
// templates.
package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flyiniris/go-pagegen/pkg/couple"
)

// Token names recognized by the generator. A placeholder in template text is
// the name wrapped in double braces, e.g. {{COUPLE_NAMES}}.
const (
	TokenCoupleNames = "COUPLE_NAMES"
	TokenName1       = "NAME_1"
	TokenName2       = "NAME_2"
	TokenDateLong    = "DATE_LONG"
	TokenDateShort   = "DATE_SHORT"
	TokenSlug        = "SLUG"
	TokenWorkerBase  = "WORKER_BASE"
	TokenVideosJSON  = "VIDEOS_JSON"
	TokenYear        = "YEAR"
)

// DefaultWorkerBase is the video origin substituted for {{WORKER_BASE}} when
// the caller does not provide one.
const DefaultWorkerBase = "https://video.flyiniris.com"

// Placeholder returns the template placeholder for a token name.
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// Entry is a single token → replacement pair.
type Entry struct {
	Token string
	Value string
}

// Placeholder returns the template text this entry replaces.
func (e Entry) Placeholder() string {
	return Placeholder(e.Token)
}

// Map holds replacement entries in insertion order. Renderers apply the
// entries sequentially, so the order is part of the rendering contract: a
// replacement value that contains a later entry's placeholder is substituted
// again when that entry is reached.
type Map struct {
	entries []Entry
	index   map[string]int
}

// Set appends the token with the given value. Setting a token that is already
// present updates its value in place without changing its position.
func (m *Map) Set(token, value string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[token]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[token] = len(m.entries)
	m.entries = append(m.entries, Entry{Token: token, Value: value})
}

// Get returns the value for a token and whether it is present.
func (m Map) Get(token string) (string, bool) {
	i, ok := m.index[token]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Has reports whether the token is present.
func (m Map) Has(token string) bool {
	_, ok := m.index[token]
	return ok
}

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Build derives the full token map from a validated config. The entries are
// produced in a fixed order: COUPLE_NAMES, NAME_1, NAME_2, DATE_LONG,
// DATE_SHORT, SLUG, WORKER_BASE, VIDEOS_JSON, YEAR. An empty workerBase
// selects DefaultWorkerBase.
func Build(cfg couple.Config, workerBase string) (Map, error) {
	if len(cfg.Names) != 2 {
		return Map{}, fmt.Errorf("tokens: build: config must carry exactly two names, got %d", len(cfg.Names))
	}
	if workerBase == "" {
		workerBase = DefaultWorkerBase
	}

	videos, err := encodeVideos(cfg.Videos)
	if err != nil {
		return Map{}, fmt.Errorf("tokens: encode videos: %w", err)
	}

	var m Map
	m.Set(TokenCoupleNames, cfg.DisplayNames())
	m.Set(TokenName1, cfg.Names[0])
	m.Set(TokenName2, cfg.Names[1])
	m.Set(TokenDateLong, cfg.Date)
	m.Set(TokenDateShort, cfg.DateShort)
	m.Set(TokenSlug, cfg.Slug)
	m.Set(TokenWorkerBase, workerBase)
	m.Set(TokenVideosJSON, videos)
	m.Set(TokenYear, ExtractYear(cfg.Date, cfg.DateShort))
	return m, nil
}

// encodeVideos serializes the videos sequence as compact JSON. HTML escaping
// is disabled so titles containing &, < or > are inserted verbatim rather
// than as &-style escapes.
func encodeVideos(videos []couple.Video) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(videos); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
