// Package codex invokes the codex command line tool as a sub-process. It assembles the command line from a Config,
// runs it to completion and hands back the captured output. A non-zero exit code is part of the Result; the only
// error returned for an invocation that couldn't be started is an `errors.LaunchError`.
package codex

import (
	"bytes"
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rwx-research/codex-wrapper/internal/errors"
	"github.com/rwx-research/codex-wrapper/internal/exec"
)

// TaskRunner is an abstraction over the execution environment. It is implemented by `exec.Local` and mocked in
// `internal/mocks`.
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(error) (int, error)
}

// CLI runs the configured executable. Its configuration is copied on construction and never changes afterwards, so a
// single CLI can be shared between goroutines.
type CLI struct {
	Log        *zap.SugaredLogger
	TaskRunner TaskRunner
	config     Config
}

// New returns a CLI that runs sub-processes locally and doesn't log.
func New(cfg Config) CLI {
	return CLI{
		Log:        zap.NewNop().Sugar(),
		TaskRunner: exec.Local{},
		config:     cfg.clone(),
	}
}

// Config returns a copy of the configuration of this CLI.
func (c CLI) Config() Config {
	return c.config.clone()
}

// Args assembles the command line for prompt. The executable comes first, followed by the approval and error mode
// flags (if set), the configured extra arguments, args, and finally the prompt.
func (c CLI) Args(prompt string, args ...string) []string {
	commandArgs := make([]string, 0, 5+len(c.config.ExtraArgs)+len(args)+1)
	commandArgs = append(commandArgs, c.config.Executable)

	if c.config.ApprovalMode != nil {
		commandArgs = append(commandArgs, approvalModeFlag, *c.config.ApprovalMode)
	}

	if c.config.FullAutoErrorMode != nil {
		commandArgs = append(commandArgs, fullAutoErrorModeFlag, *c.config.FullAutoErrorMode)
	}

	commandArgs = append(commandArgs, c.config.ExtraArgs...)
	commandArgs = append(commandArgs, args...)

	return append(commandArgs, prompt)
}

// Run executes the command line for prompt and blocks until the sub-process exits.
func (c CLI) Run(ctx context.Context, prompt string, args ...string) (Result, error) {
	commandArgs := c.Args(prompt, args...)
	commandLine := strings.Join(commandArgs, " ")

	var stdout, stderr bytes.Buffer

	cmd, err := c.TaskRunner.NewCommand(ctx, exec.CommandConfig{
		Name:   commandArgs[0],
		Args:   commandArgs[1:],
		Dir:    c.config.WorkingDir,
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return Result{}, errors.NewLaunchError(commandArgs[0], err)
	}

	c.Log.Debugf("Executing %q", commandLine)
	if err := cmd.Start(); err != nil {
		return Result{}, errors.NewLaunchError(commandArgs[0], err)
	}
	defer c.Log.Debugf("Finished executing %q", commandLine)

	result := Result{Args: commandArgs}

	if err := cmd.Wait(); err != nil {
		code, e := c.TaskRunner.GetExitStatusFromError(err)
		if e != nil {
			return Result{}, errors.NewSystemError("error while waiting for %q to exit: %s", commandArgs[0], err)
		}

		c.Log.Debugf("%q exited with code %d", commandArgs[0], code)
		result.ExitCode = code
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	return result, nil
}

// Run builds a configuration from DefaultConfig and opts and invokes it once with prompt and args.
func Run(ctx context.Context, prompt string, args []string, opts ...Option) (Result, error) {
	return New(NewConfig(opts...)).Run(ctx, prompt, args...)
}
