package cli

import (
	"github.com/rwx-research/codex-wrapper/internal/codex"
	"github.com/rwx-research/codex-wrapper/internal/errors"
)

// RunConfig holds the configuration for a single invocation (used by `Run`)
type RunConfig struct {
	Codex  codex.Config
	Prompt string
	Args   []string
	DryRun bool
	JSON   bool
}

// Validate checks whether the configuration can be used to build a command line
func (rc RunConfig) Validate() error {
	if rc.Codex.Executable == "" {
		return errors.NewConfigurationError("the executable must not be empty")
	}

	return nil
}
