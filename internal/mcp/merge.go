package mcp

import (
	"github.com/clix-so/clix-skills/internal/confdoc"
)

// Merge ensures entry e is registered in doc under the variant's server
// collection.
//
// When <keyPath>.<ServerKey> already exists, the document is left untouched
// and Merge reports true. Otherwise the projected entry is staged there,
// creating the collection container if needed, and Merge reports false.
// Staging mutates only the in-memory document; whether it reaches disk is
// the caller's decision.
//
// Merging an entry that is already present is a no-op, so running it any
// number of times yields the same document.
func Merge(doc *confdoc.Document, v Variant, e Entry) (alreadyPresent bool, err error) {
	keyPath := append(v.KeyPath(), ServerKey)

	exists, err := doc.Has(keyPath...)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}

	if err := doc.Set(keyPath, v.Project(e)); err != nil {
		return false, err
	}
	return false, nil
}
