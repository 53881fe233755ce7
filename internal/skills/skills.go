// Package skills scans and installs the Clix skill documents the binary
// ships with. A skill is a directory holding a SKILL.md with YAML
// frontmatter; installation is a plain recursive copy into the agent's
// skills directory.
package skills

import (
	"io/fs"
	"path"

	"github.com/cockroachdb/errors"

	"github.com/clix-so/clix-skills/pkg/frontmatter"
)

// SkillFileName is the metadata document every skill directory carries.
const SkillFileName = "SKILL.md"

// Meta is the YAML frontmatter of a SKILL.md document.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// Skill is one skill document directory.
type Skill struct {
	Meta

	// Dir is the skill's directory name relative to its filesystem root.
	Dir string
}

// Scan reads the top-level directories of fsys and parses each SKILL.md.
// Directories without a SKILL.md are ignored. A SKILL.md that fails to
// parse, lacks a name or description, or whose name does not match its
// directory is an error: the bundle is a build artifact and must be
// well-formed.
//
// Skills are returned in directory name order.
func Scan(fsys fs.FS) ([]Skill, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "reading skills root")
	}

	skills := make([]Skill, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		f, err := fsys.Open(path.Join(entry.Name(), SkillFileName))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, "opening %s/%s", entry.Name(), SkillFileName)
		}

		var meta Meta
		_, err = frontmatter.MustParse(f, &meta)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s/%s", entry.Name(), SkillFileName)
		}

		if meta.Name == "" {
			return nil, errors.Newf("skill %s: frontmatter has no name", entry.Name())
		}
		if meta.Name != entry.Name() {
			return nil, errors.Newf("skill %s: frontmatter name %q does not match directory", entry.Name(), meta.Name)
		}
		if meta.Description == "" {
			return nil, errors.Newf("skill %s: frontmatter has no description", entry.Name())
		}

		skills = append(skills, Skill{Meta: meta, Dir: entry.Name()})
	}

	return skills, nil
}
