package doctor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/config"
	"github.com/clix-so/clix-skills/internal/confdoc"
	"github.com/clix-so/clix-skills/internal/mcp"
	"github.com/clix-so/clix-skills/internal/skills"
)

// DefaultChecks builds the standard check set: the config file, every
// registered client, and the installed skills.
func DefaultChecks(env client.Env, bundle fs.FS, skillsDir string) []Check {
	checks := []Check{NewConfigCheck()}

	entry := mcp.DefaultEntry()
	for _, id := range client.IDs() {
		checks = append(checks, NewClientCheck(id, env, entry))
	}

	checks = append(checks, NewSkillsCheck(bundle, skillsDir))
	return checks
}

// ClientCheck verifies one client's config file: it resolves, parses, and
// has the Clix MCP server registered.
type ClientCheck struct {
	id    string
	env   client.Env
	entry mcp.Entry
}

var _ Check = (*ClientCheck)(nil)

// NewClientCheck creates a check for a single client id.
func NewClientCheck(id string, env client.Env, entry mcp.Entry) *ClientCheck {
	return &ClientCheck{id: id, env: env, entry: entry}
}

// Name returns the unique identifier for this check.
func (c *ClientCheck) Name() string {
	return "client-" + c.id
}

// Category returns the grouping for this check.
func (c *ClientCheck) Category() string {
	return "clients"
}

// Run executes the client config check and returns its result.
func (c *ClientCheck) Run() *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}

	det, err := client.Detect(c.id, c.env)
	if err != nil {
		res.Status = SeverityInfo
		res.Message = "not available on this platform"
		res.Details = map[string]any{"error": err.Error()}
		return res
	}

	desc := det.Descriptor
	res.Details = map[string]any{
		"path":   desc.ConfigPath,
		"format": string(desc.Format),
		"status": string(det.Status),
	}

	switch det.Status {
	case client.StatusNotInstalled:
		res.Status = SeverityInfo
		res.Message = fmt.Sprintf("%s not detected", desc.DisplayName)
		return res
	case client.StatusPartial:
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%s is installed but has no config file", desc.DisplayName)
		res.FixHint = "run: clix-skills sync " + c.id
		return res
	}

	doc, err := confdoc.Load(desc.ConfigPath, desc.Format)
	if err != nil {
		res.Status = SeverityError
		res.Message = fmt.Sprintf("config file does not parse: %v", err)
		res.FixHint = fmt.Sprintf("repair %s by hand, then run: clix-skills sync %s", desc.ConfigPath, c.id)
		return res
	}
	if doc == nil {
		// File vanished between detection and load.
		res.Status = SeverityInfo
		res.Message = fmt.Sprintf("%s not detected", desc.DisplayName)
		return res
	}

	keyPath := append(desc.Variant.KeyPath(), mcp.ServerKey)
	registered, err := doc.Has(keyPath...)
	if err != nil {
		res.Status = SeverityError
		res.Message = fmt.Sprintf("reading config: %v", err)
		return res
	}

	if !registered {
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%s is not registered with %s", mcp.ServerKey, desc.DisplayName)
		res.FixHint = "run: clix-skills sync " + c.id
		return res
	}

	res.Status = SeverityPass
	res.Message = fmt.Sprintf("%s registered with %s", mcp.ServerKey, desc.DisplayName)
	return res
}

// SkillsCheck verifies the bundled skills parse and are installed at the
// destination in their current versions.
type SkillsCheck struct {
	bundle  fs.FS
	destDir string
}

var _ Check = (*SkillsCheck)(nil)

// NewSkillsCheck creates a check over the bundle and the install destination.
func NewSkillsCheck(bundle fs.FS, destDir string) *SkillsCheck {
	return &SkillsCheck{bundle: bundle, destDir: destDir}
}

// Name returns the unique identifier for this check.
func (c *SkillsCheck) Name() string {
	return "skills-install"
}

// Category returns the grouping for this check.
func (c *SkillsCheck) Category() string {
	return "skills"
}

// Run executes the skills install check and returns its result.
func (c *SkillsCheck) Run() *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}

	bundled, err := skills.Scan(c.bundle)
	if err != nil {
		res.Status = SeverityError
		res.Message = fmt.Sprintf("bundled skills are malformed: %v", err)
		return res
	}

	res.Details = map[string]any{"dir": c.destDir}

	if !dirExists(c.destDir) {
		res.Status = SeverityInfo
		res.Message = fmt.Sprintf("skills directory %s does not exist", c.destDir)
		res.FixHint = "run: clix-skills install"
		return res
	}

	manifest, err := skills.ReadManifest(c.destDir)
	if err != nil {
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("skills manifest unreadable: %v", err)
		res.FixHint = "run: clix-skills install --force"
		return res
	}

	states := make(map[string]any, len(bundled))
	var missing, stale int
	for _, skill := range bundled {
		state := "installed"
		switch {
		case !dirExists(filepath.Join(c.destDir, skill.Dir)):
			state = "missing"
			missing++
		case manifest.Skills[skill.Name] != skill.Version:
			state = "out of date"
			stale++
		}
		states[skill.Name] = state
	}
	res.Details["skills"] = states

	switch {
	case missing > 0:
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%d of %d bundled skills not installed", missing, len(bundled))
		res.FixHint = "run: clix-skills install"
	case stale > 0:
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%d of %d installed skills out of date", stale, len(bundled))
		res.FixHint = "run: clix-skills install --force"
	default:
		res.Status = SeverityPass
		res.Message = fmt.Sprintf("%d skills installed and current", len(bundled))
	}
	return res
}

// ConfigCheck verifies the tool's own config file loads and validates.
type ConfigCheck struct{}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for the clix-skills config file.
func NewConfigCheck() *ConfigCheck {
	return &ConfigCheck{}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the config file check and returns its result.
func (c *ConfigCheck) Run() *CheckResult {
	res := &CheckResult{Name: c.Name(), Category: c.Category()}

	cfg, err := config.LoadDefault()
	if err != nil {
		res.Status = SeverityError
		res.Message = fmt.Sprintf("configuration is invalid: %v", err)
		if file := config.FileUsed(); file != "" {
			res.Details = map[string]any{"file": file}
			res.FixHint = "edit " + file
		}
		return res
	}

	file := config.FileUsed()
	if file == "" {
		res.Status = SeverityInfo
		res.Message = "no config file found; built-in defaults in effect"
		return res
	}

	res.Status = SeverityPass
	res.Message = fmt.Sprintf("config valid: %d default clients", len(cfg.DefaultClients))
	res.Details = map[string]any{"file": file}
	return res
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
