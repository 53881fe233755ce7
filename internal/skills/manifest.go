package skills

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/clix-so/clix-skills/pkg/fileutil"
)

// ManifestFileName is the install record kept at the skills destination.
// It maps skill names to the versions this tool installed, so later runs
// and doctor checks can tell stale copies from current ones.
const ManifestFileName = ".clix-skills.yaml"

// ManifestVersion is the current manifest schema version.
const ManifestVersion = 1

// Manifest records which skills were installed and at what version.
type Manifest struct {
	Version int               `yaml:"version"`
	Skills  map[string]string `yaml:"skills"`
}

// ReadManifest loads the manifest from destDir. A missing manifest is not
// an error; an empty one is returned so callers can populate and write it.
func ReadManifest(destDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(destDir, ManifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{Version: ManifestVersion, Skills: map[string]string{}}, nil
		}
		return nil, errors.Wrap(err, "reading skills manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing skills manifest")
	}
	if m.Skills == nil {
		m.Skills = map[string]string{}
	}
	return &m, nil
}

// Write saves the manifest to destDir atomically.
func (m *Manifest) Write(destDir string) error {
	path := filepath.Join(destDir, ManifestFileName)
	if err := fileutil.AtomicWriteYAML(path, m); err != nil {
		return errors.Wrap(err, "writing skills manifest")
	}
	return nil
}
