package mocks

import (
	"github.com/rwx-research/codex-wrapper/internal/errors"
	"github.com/rwx-research/codex-wrapper/internal/exec"
)

// Command is a mocked implementation of 'exec.Command'.
type Command struct {
	MockStart func() error
	MockWait  func() error
}

// Start either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) Start() error {
	if c.MockStart != nil {
		return c.MockStart()
	}

	return errors.NewConfigurationError("MockStart was not configured")
}

// Wait either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) Wait() error {
	if c.MockWait != nil {
		return c.MockWait()
	}

	return errors.NewConfigurationError("MockWait was not configured")
}

var _ exec.Command = (*Command)(nil)
