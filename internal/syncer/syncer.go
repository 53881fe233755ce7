package syncer

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/confdoc"
	"github.com/clix-so/clix-skills/internal/logging"
	"github.com/clix-so/clix-skills/internal/mcp"
)

// ConfirmFunc answers a yes/no prompt. Implementations may ask the user
// or answer unconditionally.
type ConfirmFunc func(prompt string) bool

// ConfirmAll answers yes to every prompt. It backs the --yes flag.
func ConfirmAll(string) bool { return true }

// DenyAll answers no to every prompt.
func DenyAll(string) bool { return false }

// Syncer registers the Clix MCP server entry with AI coding clients.
type Syncer struct {
	env     client.Env
	entry   mcp.Entry
	confirm ConfirmFunc
	logger  *slog.Logger
}

// New creates a Syncer that registers the default server entry and logs
// nowhere.
func New(env client.Env, confirm ConfirmFunc) *Syncer {
	return NewWithLogger(env, confirm, logging.NewDiscard())
}

// NewWithLogger creates a Syncer with the given logger.
func NewWithLogger(env client.Env, confirm ConfirmFunc, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Syncer{
		env:     env,
		entry:   mcp.DefaultEntry(),
		confirm: confirm,
		logger:  logger,
	}
}

// Sync runs the registration workflow for each client id in order. A
// failure for one client never stops the remaining clients; every id
// produces exactly one Result.
func (s *Syncer) Sync(ids []string) []Result {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		res := s.syncOne(id)
		results = append(results, res)

		switch res.Status {
		case StatusFailed:
			s.logger.Error("sync failed", "client", id, "error", res.Err)
		case StatusUnsupported:
			s.logger.Debug("client unsupported", "client", id, "error", res.Err)
		default:
			s.logger.Debug("client synced", "client", id, "status", string(res.Status))
		}
	}
	return results
}

// syncOne runs the workflow for a single client:
// resolve, load or confirm-create, merge check, confirm, write.
func (s *Syncer) syncOne(id string) Result {
	res := Result{ClientID: id}

	desc, err := client.Resolve(id, s.env)
	if err != nil {
		res.Status = StatusUnsupported
		res.Err = err
		res.Message = err.Error()
		return res
	}
	res.DisplayName = desc.DisplayName
	res.ConfigPath = desc.ConfigPath

	doc, err := confdoc.Load(desc.ConfigPath, desc.Format)
	if err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, "loading %s config", desc.DisplayName)
		res.Message = res.Err.Error()
		return res
	}
	if doc == nil {
		prompt := fmt.Sprintf("%s has no config file at %s. Create it?", desc.DisplayName, desc.ConfigPath)
		if !s.confirm(prompt) {
			res.Status = StatusSkipped
			res.Message = "declined to create config file"
			return res
		}
		doc = confdoc.New(desc.ConfigPath, desc.Format)
	}

	already, err := mcp.Merge(doc, desc.Variant, s.entry)
	if err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, "merging %s config", desc.DisplayName)
		res.Message = res.Err.Error()
		return res
	}
	if already {
		res.Status = StatusAlreadyConfigured
		res.Message = "server already registered"
		return res
	}

	prompt := fmt.Sprintf("Register the Clix MCP server with %s (%s)?", desc.DisplayName, desc.ConfigPath)
	if !s.confirm(prompt) {
		res.Status = StatusSkipped
		res.Message = "registration declined"
		return res
	}

	if err := confdoc.Write(doc); err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, "writing %s config", desc.DisplayName)
		res.Message = res.Err.Error()
		return res
	}

	res.Status = StatusInjected
	res.Created = doc.Fresh()
	if res.Created {
		res.Message = "config file created"
	} else {
		res.Message = "server registered"
	}
	return res
}
