package confdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
)

func TestLoad_JSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantNil bool
		wantErr bool
	}{
		{
			name:    "valid object",
			content: `{"mcpServers": {}}`,
		},
		{
			name:    "empty object",
			content: `{}`,
		},
		{
			name:    "malformed",
			content: `{"mcpServers": `,
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
		{
			name:    "root array",
			content: `[1, 2]`,
			wantErr: true,
		},
		{
			name:    "root null",
			content: `null`,
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			content: `{"a": 1} tail`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mcp.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			doc, err := Load(path, FormatJSON)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if doc == nil {
				t.Fatal("Load() = nil for existing valid file")
			}
			if doc.Fresh() {
				t.Error("loaded document reported fresh")
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "absent", "mcp.json"), FormatJSON)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if doc != nil {
		t.Fatalf("Load() = %+v, want nil for missing file", doc)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "model = \"o3\"\n\n[mcp_servers.existing]\ncommand = \"uvx\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		doc, err := Load(path, FormatTOML)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		ok, err := doc.Has("mcp_servers", "existing")
		if err != nil || !ok {
			t.Fatalf("Has() = %v, %v; want true", ok, err)
		}
	})

	t.Run("empty file is an empty table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}

		doc, err := Load(path, FormatTOML)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		ok, err := doc.Has("anything")
		if err != nil || ok {
			t.Fatalf("Has() = %v, %v; want false", ok, err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("model = \n"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path, FormatTOML); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestRoundTrip_JSON_BytesPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	original := "{\n  \"mcpServers\": {\"a\": {\"command\": \"x\"}},\n  \"weird\":\t[1,2 , 3]\n}\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path, FormatJSON)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := Write(doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != original {
		t.Errorf("round trip changed bytes:\ngot:  %q\nwant: %q", got, original)
	}
}

func TestRoundTrip_TOML_Semantic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	original := "# a comment\nmodel = \"o3\"\napproval = \"never\"\n\n[mcp_servers.keep]\ncommand = \"uvx\"\nargs = [\"keep-server\"]\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path, FormatTOML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := Write(doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var want, got map[string]any
	if err := toml.Unmarshal([]byte(original), &want); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("rewritten config is not valid TOML: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip changed semantics (-want +got):\n%s", diff)
	}
}

func TestWrite_FreshJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "mcp.json")

	doc := New(path, FormatJSON)
	if err := doc.Set([]string{"mcpServers", "clix-mcp-server"}, map[string]any{"command": "npx"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := Write(doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("parent directory not created: %v", err)
	}

	s := string(data)
	if !strings.HasSuffix(s, "\n") {
		t.Error("fresh document missing trailing newline")
	}
	if !strings.Contains(s, "  \"mcpServers\"") {
		t.Errorf("fresh document not indented:\n%s", s)
	}
}
