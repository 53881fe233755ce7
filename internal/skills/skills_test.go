package skills

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"

	"github.com/clix-so/clix-skills/pkg/frontmatter"
)

const sdkSkillDoc = `---
name: clix-sdk-integration
description: Integrate the Clix SDK into a mobile or web app
version: 0.3.0
---
# Clix SDK Integration

Install the SDK and initialize it at app startup.
`

const trackingSkillDoc = `---
name: clix-event-tracking
description: Instrument product events with the Clix SDK
version: 0.3.0
---
# Clix Event Tracking

Name events in lower_snake_case.
`

func bundleFS() fstest.MapFS {
	return fstest.MapFS{
		"clix-sdk-integration/SKILL.md":          {Data: []byte(sdkSkillDoc)},
		"clix-sdk-integration/examples/swift.md": {Data: []byte("# Swift example\n")},
		"clix-event-tracking/SKILL.md":           {Data: []byte(trackingSkillDoc)},
	}
}

func TestScan_ReadsSkillDirectories(t *testing.T) {
	skills, err := Scan(bundleFS())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(skills) != 2 {
		t.Fatalf("Scan() returned %d skills, want 2", len(skills))
	}

	// fs.ReadDir sorts by name, so order is deterministic.
	if got := skills[0].Name; got != "clix-event-tracking" {
		t.Errorf("skills[0].Name = %q, want %q", got, "clix-event-tracking")
	}
	if got := skills[1].Name; got != "clix-sdk-integration" {
		t.Errorf("skills[1].Name = %q, want %q", got, "clix-sdk-integration")
	}

	for _, s := range skills {
		if s.Dir != s.Name {
			t.Errorf("skill %q: Dir = %q, want it to match the name", s.Name, s.Dir)
		}
		if s.Description == "" {
			t.Errorf("skill %q: empty description", s.Name)
		}
		if s.Version != "0.3.0" {
			t.Errorf("skill %q: Version = %q, want %q", s.Name, s.Version, "0.3.0")
		}
	}
}

func TestScan_IgnoresNonSkillEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"clix-sdk-integration/SKILL.md": {Data: []byte(sdkSkillDoc)},
		"notes/README.md":               {Data: []byte("not a skill\n")},
		"LICENSE":                       {Data: []byte("MIT\n")},
	}

	skills, err := Scan(fsys)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("Scan() returned %d skills, want 1", len(skills))
	}
	if skills[0].Name != "clix-sdk-integration" {
		t.Errorf("skills[0].Name = %q, want %q", skills[0].Name, "clix-sdk-integration")
	}
}

func TestScan_EmptyFS(t *testing.T) {
	skills, err := Scan(fstest.MapFS{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("Scan() returned %d skills, want 0", len(skills))
	}
}

func TestScan_MalformedSkills(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		errContains string
		wantErrIs   error
	}{
		{
			name: "missing name",
			doc: `---
description: A skill with no name
version: 0.1.0
---
`,
			errContains: "no name",
		},
		{
			name: "name does not match directory",
			doc: `---
name: something-else
description: Name and directory disagree
version: 0.1.0
---
`,
			errContains: "does not match directory",
		},
		{
			name: "missing description",
			doc: `---
name: broken-skill
version: 0.1.0
---
`,
			errContains: "no description",
		},
		{
			name:      "no frontmatter at all",
			doc:       "# Just a heading\n\nBody without metadata.\n",
			wantErrIs: frontmatter.ErrMissingFrontmatter,
		},
		{
			name: "malformed yaml",
			doc: `---
name: broken-skill
description: [unclosed
---
`,
			errContains: "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"broken-skill/SKILL.md": {Data: []byte(tt.doc)},
			}

			_, err := Scan(fsys)
			if err == nil {
				t.Fatal("Scan() error = nil, want error")
			}
			if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
				t.Errorf("Scan() error = %v, want errors.Is(%v)", err, tt.wantErrIs)
			}
			if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Scan() error = %q, want it to contain %q", err, tt.errContains)
			}
		})
	}
}
