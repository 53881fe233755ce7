package confdoc

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/clix-so/clix-skills/pkg/fileutil"
)

// Load reads and parses the configuration file at path.
//
// A missing file is not an error: Load returns (nil, nil) and the caller
// decides whether to create a fresh document. Any other read failure, and
// any content that cannot be parsed as an object/table in the given format,
// returns an error. Load never creates or modifies files.
func Load(path string, format Format) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	d := &Document{
		path:   path,
		format: format,
	}

	switch format {
	case FormatTOML:
		var tree map[string]any
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if tree == nil {
			tree = map[string]any{}
		}
		d.tree = tree

	default:
		// Probe for a well-formed object root; the raw bytes stay canonical
		var probe map[string]any
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if probe == nil {
			return nil, errors.Newf("parsing %s: root is not a JSON object", path)
		}
		d.raw = data
	}

	return d, nil
}
