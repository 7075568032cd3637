// Package main holds the command line interface for codexrun. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"fmt"
	"os"

	"github.com/rwx-research/codex-wrapper/internal/errors"
)

func main() {
	if err := configureRootCmd(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Output of codex itself was already relayed by `internal/cli`. An execution error only carries its exit code.
	if err := rootCmd.Execute(); err != nil {
		if e, ok := errors.AsExecutionError(err); ok {
			os.Exit(exitCode(e))
		}

		fmt.Fprintln(os.Stderr, errors.WithDecoration(err))
		os.Exit(1)
	}
}

// exitCode maps the exit code of codex to our own. Sub-processes that were terminated by a signal report -1.
func exitCode(err errors.ExecutionError) int {
	if err.Code <= 0 {
		return 1
	}

	return err.Code
}
