// Package confdoc models client configuration files as format-tagged
// documents that can be inspected and minimally edited without disturbing
// content the edit does not touch.
//
// JSON documents keep the raw file bytes and route edits through path-based
// splicing, so key order, indentation, number formatting, and unknown keys
// all survive a write untouched. TOML documents keep a parsed tree; unknown
// keys survive semantically, though formatting and comments do not.
//
// Key paths are slices of literal key names. A dot inside a segment is part
// of the key, never a separator: []string{"amp.mcpServers", "x"} addresses
// the single top-level key "amp.mcpServers".
package confdoc

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Format identifies the serialization format of a configuration document.
type Format string

const (
	// FormatJSON is a JSON object document.
	FormatJSON Format = "json"
	// FormatTOML is a TOML table document.
	FormatTOML Format = "toml"
)

// Document is a configuration file held in memory. Instances come from
// Load (existing files) or New (files that do not exist yet) and go back
// to disk through Write.
type Document struct {
	path   string
	format Format
	fresh  bool

	// raw holds the current bytes for JSON documents
	raw []byte
	// tree holds the parsed table for TOML documents
	tree map[string]any
}

// New returns a fresh empty document for a file that does not exist yet.
func New(path string, format Format) *Document {
	d := &Document{
		path:   path,
		format: format,
		fresh:  true,
	}
	switch format {
	case FormatTOML:
		d.tree = map[string]any{}
	default:
		d.raw = []byte("{}")
	}
	return d
}

// Path returns the file path the document belongs to.
func (d *Document) Path() string {
	return d.path
}

// Format returns the document's serialization format.
func (d *Document) Format() Format {
	return d.format
}

// Fresh reports whether the document was created in memory rather than
// loaded from disk.
func (d *Document) Fresh() bool {
	return d.fresh
}

// Has reports whether the full key path exists in the document.
// An intermediate segment that exists but is not a container is an error.
func (d *Document) Has(path ...string) (bool, error) {
	if len(path) == 0 {
		return false, errors.New("empty key path")
	}
	if d.format == FormatTOML {
		return d.tomlHas(path)
	}
	return d.jsonHas(path)
}

// Set places value at the key path, creating intermediate containers as
// needed. That creation is the only structural change Set may make outside
// the final key. An intermediate segment holding a non-container value is
// an error.
func (d *Document) Set(path []string, value any) error {
	if len(path) == 0 {
		return errors.New("empty key path")
	}
	if d.format == FormatTOML {
		return d.tomlSet(path, value)
	}
	return d.jsonSet(path, value)
}

func (d *Document) jsonHas(path []string) (bool, error) {
	for i := 1; i <= len(path); i++ {
		res := gjson.GetBytes(d.raw, jsonPath(path[:i]))
		if !res.Exists() {
			return false, nil
		}
		if i < len(path) && !res.IsObject() {
			return false, errors.Newf("key %q: existing value is not an object", strings.Join(path[:i], "."))
		}
	}
	return true, nil
}

func (d *Document) jsonSet(path []string, value any) error {
	// Reject non-object intermediates before splicing; sjson would
	// silently replace them.
	for i := 1; i < len(path); i++ {
		res := gjson.GetBytes(d.raw, jsonPath(path[:i]))
		if !res.Exists() {
			break
		}
		if !res.IsObject() {
			return errors.Newf("key %q: existing value is not an object", strings.Join(path[:i], "."))
		}
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshaling value")
	}

	updated, err := sjson.SetRawBytes(d.raw, jsonPath(path), data)
	if err != nil {
		return errors.Wrapf(err, "setting %q", strings.Join(path, "."))
	}
	d.raw = updated
	return nil
}

func (d *Document) tomlHas(path []string) (bool, error) {
	node := d.tree
	for i, seg := range path {
		v, ok := node[seg]
		if !ok {
			return false, nil
		}
		if i == len(path)-1 {
			return true, nil
		}
		child, ok := v.(map[string]any)
		if !ok {
			return false, errors.Newf("key %q: existing value is not a table", strings.Join(path[:i+1], "."))
		}
		node = child
	}
	return true, nil
}

func (d *Document) tomlSet(path []string, value any) error {
	node := d.tree
	for i, seg := range path[:len(path)-1] {
		v, ok := node[seg]
		if !ok {
			child := map[string]any{}
			node[seg] = child
			node = child
			continue
		}
		child, ok := v.(map[string]any)
		if !ok {
			return errors.Newf("key %q: existing value is not a table", strings.Join(path[:i+1], "."))
		}
		node = child
	}
	node[path[len(path)-1]] = value
	return nil
}

// jsonPath joins key segments into a gjson/sjson path, escaping characters
// those libraries treat specially so every segment stays a literal key.
func jsonPath(segments []string) string {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = segmentEscaper.Replace(seg)
	}
	return strings.Join(escaped, ".")
}

var segmentEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
)
