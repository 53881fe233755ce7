package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/config"
	"github.com/clix-so/clix-skills/internal/mcp"
	"github.com/clix-so/clix-skills/internal/skills"
)

func testEnv(t *testing.T) client.Env {
	t.Helper()

	return client.Env{
		OS:      "linux",
		Home:    t.TempDir(),
		WorkDir: t.TempDir(),
		Getenv:  func(string) string { return "" },
		FileExists: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.Mode().IsRegular()
		},
		DirExists: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.IsDir()
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestClientCheck_Run(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		setup       func(t *testing.T, env client.Env)
		wantStatus  Severity
		wantMessage string
		wantHint    string
	}{
		{
			name:        "not detected",
			id:          "vscode",
			setup:       func(*testing.T, client.Env) {},
			wantStatus:  SeverityInfo,
			wantMessage: "not detected",
		},
		{
			name: "directory without config file",
			id:   "vscode",
			setup: func(t *testing.T, env client.Env) {
				if err := os.MkdirAll(filepath.Join(env.Home, ".vscode"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			wantStatus:  SeverityWarning,
			wantMessage: "has no config file",
			wantHint:    "clix-skills sync vscode",
		},
		{
			name: "config does not parse",
			id:   "vscode",
			setup: func(t *testing.T, env client.Env) {
				writeFile(t, filepath.Join(env.Home, ".vscode", "mcp.json"), "{")
			},
			wantStatus:  SeverityError,
			wantMessage: "does not parse",
			wantHint:    "clix-skills sync vscode",
		},
		{
			name: "server not registered",
			id:   "vscode",
			setup: func(t *testing.T, env client.Env) {
				writeFile(t, filepath.Join(env.Home, ".vscode", "mcp.json"),
					`{"mcpServers": {"other": {"command": "foo"}}}`)
			},
			wantStatus:  SeverityWarning,
			wantMessage: "not registered",
			wantHint:    "clix-skills sync vscode",
		},
		{
			name: "server registered",
			id:   "vscode",
			setup: func(t *testing.T, env client.Env) {
				writeFile(t, filepath.Join(env.Home, ".vscode", "mcp.json"),
					`{"mcpServers": {"clix-mcp-server": {"command": "npx"}}}`)
			},
			wantStatus:  SeverityPass,
			wantMessage: "registered",
		},
		{
			name: "codex toml registered",
			id:   "codex",
			setup: func(t *testing.T, env client.Env) {
				writeFile(t, filepath.Join(env.Home, ".codex", "config.toml"),
					"[mcp_servers.clix-mcp-server]\ncommand = \"npx\"\n")
			},
			wantStatus:  SeverityPass,
			wantMessage: "registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv(t)
			tt.setup(t, env)

			res := NewClientCheck(tt.id, env, mcp.DefaultEntry()).Run()

			if res.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", res.Status, tt.wantStatus)
			}
			if !strings.Contains(res.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want it to contain %q", res.Message, tt.wantMessage)
			}
			if tt.wantHint != "" && !strings.Contains(res.FixHint, tt.wantHint) {
				t.Errorf("FixHint = %q, want it to contain %q", res.FixHint, tt.wantHint)
			}
			if res.Name != "client-"+tt.id {
				t.Errorf("Name = %q, want %q", res.Name, "client-"+tt.id)
			}
			if res.Category != "clients" {
				t.Errorf("Category = %q, want %q", res.Category, "clients")
			}
		})
	}
}

func TestClientCheck_UnsupportedPlatform(t *testing.T) {
	env := testEnv(t)
	env.OS = "windows"

	// Claude Desktop needs APPDATA on windows; the empty Getenv leaves it unset.
	res := NewClientCheck("claude", env, mcp.DefaultEntry()).Run()

	if res.Status != SeverityInfo {
		t.Errorf("Status = %v, want %v", res.Status, SeverityInfo)
	}
	if !strings.Contains(res.Message, "not available") {
		t.Errorf("Message = %q, want it to contain %q", res.Message, "not available")
	}
}

const testSkillDoc = `---
name: clix-sdk-integration
description: Integrate the Clix SDK
version: 0.3.0
---
# Body
`

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"clix-sdk-integration/SKILL.md": {Data: []byte(testSkillDoc)},
	}
}

func TestSkillsCheck_Run(t *testing.T) {
	t.Run("malformed bundle", func(t *testing.T) {
		broken := fstest.MapFS{
			"broken/SKILL.md": {Data: []byte("no frontmatter\n")},
		}
		res := NewSkillsCheck(broken, t.TempDir()).Run()

		if res.Status != SeverityError {
			t.Errorf("Status = %v, want %v", res.Status, SeverityError)
		}
		if !strings.Contains(res.Message, "malformed") {
			t.Errorf("Message = %q, want it to contain %q", res.Message, "malformed")
		}
	})

	t.Run("destination missing", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "skills")
		res := NewSkillsCheck(testBundle(), dest).Run()

		if res.Status != SeverityInfo {
			t.Errorf("Status = %v, want %v", res.Status, SeverityInfo)
		}
		if !strings.Contains(res.FixHint, "clix-skills install") {
			t.Errorf("FixHint = %q, want it to contain %q", res.FixHint, "clix-skills install")
		}
	})

	t.Run("skills not installed", func(t *testing.T) {
		res := NewSkillsCheck(testBundle(), t.TempDir()).Run()

		if res.Status != SeverityWarning {
			t.Errorf("Status = %v, want %v", res.Status, SeverityWarning)
		}
		if !strings.Contains(res.Message, "not installed") {
			t.Errorf("Message = %q, want it to contain %q", res.Message, "not installed")
		}
	})

	t.Run("installed and current", func(t *testing.T) {
		dest := t.TempDir()
		if _, _, err := skills.InstallAll(testBundle(), dest, false); err != nil {
			t.Fatalf("InstallAll() error = %v", err)
		}

		res := NewSkillsCheck(testBundle(), dest).Run()

		if res.Status != SeverityPass {
			t.Errorf("Status = %v, want %v (message %q)", res.Status, SeverityPass, res.Message)
		}
	})

	t.Run("installed but out of date", func(t *testing.T) {
		dest := t.TempDir()
		if _, _, err := skills.InstallAll(testBundle(), dest, false); err != nil {
			t.Fatalf("InstallAll() error = %v", err)
		}

		// Record an older version than the bundle ships.
		m := &skills.Manifest{
			Version: skills.ManifestVersion,
			Skills:  map[string]string{"clix-sdk-integration": "0.2.0"},
		}
		if err := m.Write(dest); err != nil {
			t.Fatal(err)
		}

		res := NewSkillsCheck(testBundle(), dest).Run()

		if res.Status != SeverityWarning {
			t.Errorf("Status = %v, want %v", res.Status, SeverityWarning)
		}
		if !strings.Contains(res.Message, "out of date") {
			t.Errorf("Message = %q, want it to contain %q", res.Message, "out of date")
		}
		if !strings.Contains(res.FixHint, "--force") {
			t.Errorf("FixHint = %q, want it to contain %q", res.FixHint, "--force")
		}
	})

	t.Run("manifest unreadable", func(t *testing.T) {
		dest := t.TempDir()
		writeFile(t, filepath.Join(dest, skills.ManifestFileName), "skills: [unclosed\n")

		res := NewSkillsCheck(testBundle(), dest).Run()

		if res.Status != SeverityWarning {
			t.Errorf("Status = %v, want %v", res.Status, SeverityWarning)
		}
		if !strings.Contains(res.Message, "manifest") {
			t.Errorf("Message = %q, want it to contain %q", res.Message, "manifest")
		}
	})
}

func TestConfigCheck_Run(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		t.Setenv("CLIX_SKILLS_CONFIG_DIR", t.TempDir())
		config.Init()

		res := NewConfigCheck().Run()

		if res.Status != SeverityInfo {
			t.Errorf("Status = %v, want %v (message %q)", res.Status, SeverityInfo, res.Message)
		}
		if !strings.Contains(res.Message, "defaults") {
			t.Errorf("Message = %q, want it to contain %q", res.Message, "defaults")
		}
	})

	t.Run("valid config file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "version: 1\ndefault_clients:\n  - cursor\n")
		t.Setenv("CLIX_SKILLS_CONFIG_DIR", dir)
		config.Init()

		res := NewConfigCheck().Run()

		if res.Status != SeverityPass {
			t.Errorf("Status = %v, want %v (message %q)", res.Status, SeverityPass, res.Message)
		}
		if !strings.Contains(res.Message, "1 default clients") {
			t.Errorf("Message = %q, want it to contain %q", res.Message, "1 default clients")
		}
	})

	t.Run("invalid config file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "version: 99\n")
		t.Setenv("CLIX_SKILLS_CONFIG_DIR", dir)
		config.Init()

		res := NewConfigCheck().Run()

		if res.Status != SeverityError {
			t.Errorf("Status = %v, want %v (message %q)", res.Status, SeverityError, res.Message)
		}
		if res.FixHint == "" {
			t.Error("FixHint is empty, want an edit hint")
		}
	})
}

func TestDefaultChecks_CoversAllClients(t *testing.T) {
	env := testEnv(t)
	checks := DefaultChecks(env, testBundle(), t.TempDir())

	// One config check, one per client, one skills check.
	want := len(client.IDs()) + 2
	if len(checks) != want {
		t.Fatalf("DefaultChecks() returned %d checks, want %d", len(checks), want)
	}

	if checks[0].Name() != "config-file" {
		t.Errorf("checks[0].Name() = %q, want %q", checks[0].Name(), "config-file")
	}
	if last := checks[len(checks)-1]; last.Name() != "skills-install" {
		t.Errorf("last check Name() = %q, want %q", last.Name(), "skills-install")
	}

	for i, id := range client.IDs() {
		if got := checks[i+1].Name(); got != "client-"+id {
			t.Errorf("checks[%d].Name() = %q, want %q", i+1, got, "client-"+id)
		}
	}
}
