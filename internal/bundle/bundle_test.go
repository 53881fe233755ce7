package bundle_test

import (
	"testing"

	"github.com/clix-so/clix-skills/internal/bundle"
	"github.com/clix-so/clix-skills/internal/skills"
)

// The embedded bundle is a build artifact. This test is the gate that
// keeps a malformed SKILL.md from shipping.
func TestSkills_BundleIsWellFormed(t *testing.T) {
	all, err := skills.Scan(bundle.Skills())
	if err != nil {
		t.Fatalf("Scan(bundle.Skills()) error = %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("bundle holds %d skills, want 2", len(all))
	}

	want := []string{"clix-event-tracking", "clix-sdk-integration"}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("skills[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}

	for _, s := range all {
		if s.Description == "" {
			t.Errorf("skill %q: empty description", s.Name)
		}
		if s.Version == "" {
			t.Errorf("skill %q: empty version", s.Name)
		}
	}
}
