// Package bundle carries the Clix skill documents shipped inside the
// binary. Each skill is a directory under skills/ holding a SKILL.md with
// YAML frontmatter plus any auxiliary files.
package bundle

import (
	"embed"
	"io/fs"
)

//go:embed skills
var content embed.FS

// Skills returns the bundled skill documents as a filesystem rooted at the
// skills directory: one subdirectory per skill.
func Skills() fs.FS {
	sub, err := fs.Sub(content, "skills")
	if err != nil {
		// The skills directory is embedded at build time
		panic(err)
	}
	return sub
}
