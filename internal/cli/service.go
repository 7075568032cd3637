// Package cli holds the main business logic of codexrun. This is mainly:
// 1. Invoking codex with the right configuration.
// 2. Relaying its output and exit code to the terminal.
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/codexrun`.
package cli

import (
	"io"

	"go.uber.org/zap"

	"github.com/rwx-research/codex-wrapper/internal/codex"
)

// Service is the main CLI service.
type Service struct {
	Log        *zap.SugaredLogger
	TaskRunner codex.TaskRunner
	Stdout     io.Writer
	Stderr     io.Writer
}

func (s Service) newCLI(cfg codex.Config) codex.CLI {
	cli := codex.New(cfg)

	if s.Log != nil {
		cli.Log = s.Log
	}

	if s.TaskRunner != nil {
		cli.TaskRunner = s.TaskRunner
	}

	return cli
}
