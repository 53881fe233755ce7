package confdoc

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/clix-so/clix-skills/internal/paths"
	"github.com/clix-so/clix-skills/pkg/fileutil"
)

// Encode serializes the document in its tagged format.
//
// Loaded JSON documents are returned exactly as held, so bytes outside any
// edited key path are preserved. Fresh JSON documents are indented with two
// spaces. TOML documents are re-marshaled from the tree.
func (d *Document) Encode() ([]byte, error) {
	switch d.format {
	case FormatTOML:
		data, err := toml.Marshal(d.tree)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling TOML")
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		return data, nil

	default:
		if !d.fresh {
			return d.raw, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, d.raw, "", "  "); err != nil {
			return nil, errors.Wrap(err, "indenting JSON")
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}
}

// Write serializes the document and persists it to its path atomically,
// creating the parent directory when necessary.
func Write(d *Document) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}

	if err := paths.EnsureDir(filepath.Dir(d.path), paths.ConfigDirPerm); err != nil {
		return errors.Wrapf(err, "creating directory for %s", d.path)
	}

	if err := fileutil.AtomicWriteFile(d.path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", d.path)
	}

	return nil
}
