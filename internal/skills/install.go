package skills

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	clixerrors "github.com/clix-so/clix-skills/internal/errors"
	"github.com/clix-so/clix-skills/internal/paths"
)

// Install copies a skill's directory from fsys into destDir. The target
// directory must not already exist unless force is set, in which case the
// old copy is replaced wholesale.
func Install(fsys fs.FS, skill Skill, destDir string, force bool) error {
	target := filepath.Join(destDir, skill.Dir)

	if _, err := os.Stat(target); err == nil {
		if !force {
			return errors.Wrapf(clixerrors.ErrSkillExists, "%s", skill.Name)
		}
		if err := os.RemoveAll(target); err != nil {
			return errors.Wrapf(err, "removing existing skill %s", skill.Name)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "checking skill %s", skill.Name)
	}

	if err := paths.EnsureDir(destDir, paths.ConfigDirPerm); err != nil {
		return errors.Wrap(err, "creating skills directory")
	}

	src, err := fs.Sub(fsys, skill.Dir)
	if err != nil {
		return errors.Wrapf(err, "opening skill %s", skill.Name)
	}

	if err := copyTree(src, target); err != nil {
		// Don't leave a half-copied skill behind.
		_ = os.RemoveAll(target)
		return errors.Wrapf(err, "copying skill %s", skill.Name)
	}

	return nil
}

// InstallAll installs every skill in fsys into destDir and records the
// result in the manifest. Skills already present are skipped unless force
// is set. The manifest is written once, after the copies.
func InstallAll(fsys fs.FS, destDir string, force bool) (installed, skipped []Skill, err error) {
	all, err := Scan(fsys)
	if err != nil {
		return nil, nil, errors.Wrap(err, "scanning bundled skills")
	}

	for _, skill := range all {
		if err := Install(fsys, skill, destDir, force); err != nil {
			if errors.Is(err, clixerrors.ErrSkillExists) {
				skipped = append(skipped, skill)
				continue
			}
			return installed, skipped, err
		}
		installed = append(installed, skill)
	}

	if len(installed) > 0 {
		manifest, err := ReadManifest(destDir)
		if err != nil {
			return installed, skipped, err
		}
		for _, skill := range installed {
			manifest.Skills[skill.Name] = skill.Version
		}
		if err := manifest.Write(destDir); err != nil {
			return installed, skipped, err
		}
	}

	return installed, skipped, nil
}

// copyTree writes every file under src into dest, creating directories as
// needed. src paths are slash separated per io/fs.
func copyTree(src fs.FS, dest string) error {
	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		target := filepath.Join(dest, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(src, p)
		if err != nil {
			return errors.Wrapf(err, "reading %s", p)
		}
		return os.WriteFile(target, data, 0o644)
	})
}
