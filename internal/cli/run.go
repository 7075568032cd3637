package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/kballard/go-shellquote"

	"github.com/rwx-research/codex-wrapper/internal/errors"
)

type dryRunOutput struct {
	Args []string `json:"args"`
}

// Run invokes codex once and relays the outcome. By default the captured stdout and stderr are copied verbatim to the
// service's writers; with `JSON` set, the whole result is printed as a JSON document instead. A non-zero exit code of
// codex is returned as an ExecutionError carrying that code.
func (s Service) Run(ctx context.Context, cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.WithStack(err)
	}

	cli := s.newCLI(cfg.Codex)

	if cfg.DryRun {
		return s.printCommandLine(cli.Args(cfg.Prompt, cfg.Args...), cfg.JSON)
	}

	result, err := cli.Run(ctx, cfg.Prompt, cfg.Args...)
	if err != nil {
		return errors.WithStack(err)
	}

	if cfg.JSON {
		if err := s.printJSON(result); err != nil {
			return errors.WithStack(err)
		}
	} else {
		if _, err := io.WriteString(s.Stdout, result.Stdout); err != nil {
			return errors.NewSystemError("unable to write to stdout: %s", err)
		}

		if _, err := io.WriteString(s.Stderr, result.Stderr); err != nil {
			return errors.NewSystemError("unable to write to stderr: %s", err)
		}
	}

	if !result.Success() {
		return errors.NewExecutionError(result.ExitCode, "%s exited with code %d", result.Args[0], result.ExitCode)
	}

	return nil
}

func (s Service) printCommandLine(args []string, asJSON bool) error {
	if asJSON {
		return s.printJSON(dryRunOutput{Args: args})
	}

	if _, err := io.WriteString(s.Stdout, shellquote.Join(args...)+"\n"); err != nil {
		return errors.NewSystemError("unable to write to stdout: %s", err)
	}

	return nil
}

func (s Service) printJSON(v any) error {
	encoder := json.NewEncoder(s.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return errors.NewSystemError("unable to output result as JSON: %s", err)
	}

	return nil
}
