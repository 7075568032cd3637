package main

import (
	"github.com/spf13/cobra"

	"github.com/rwx-research/codex-wrapper/internal/codex"
)

// CliArgs holds the flags that are not part of the layered configuration
type CliArgs struct {
	configFilePath string
}

// configKeys are the keys that can be set via flags, environment variables and the config file
const (
	keyExecutable        = "executable"
	keyWorkingDir        = "working-dir"
	keyApprovalMode      = "approval-mode"
	keyNoApprovalMode    = "no-approval-mode"
	keyFullAutoErrorMode = "full-auto-error-mode"
	keyExtraArgs         = "extra-args"
	keyDebug             = "debug"
	keyJSON              = "json"
	keyDryRun            = "dry-run"
)

func addFlags(cmd *cobra.Command, cliArgs *CliArgs) error {
	flags := cmd.Flags()

	flags.StringVar(&cliArgs.configFilePath, "config-file", "", "the config file for codexrun")

	flags.String(keyExecutable, codex.DefaultExecutable, "the executable to invoke")
	flags.StringP(keyWorkingDir, "C", "", "the directory to run the executable in (default: current directory)")
	flags.String(keyApprovalMode, codex.DefaultApprovalMode, "the value passed to --approval-mode")
	flags.Bool(keyNoApprovalMode, false, "don't pass --approval-mode at all")
	flags.String(keyFullAutoErrorMode, "", "the value passed to --full-auto-error-mode (omitted unless set)")
	flags.StringArray(keyExtraArgs, nil, "an argument placed before ARGS and PROMPT (may be repeated)")
	flags.Bool(keyDebug, false, "enable debug output")
	flags.Bool(keyJSON, false, "print the exit code, stdout and stderr of the executable as JSON")
	flags.Bool(keyDryRun, false, "print the command line instead of running it")

	cmd.MarkFlagsMutuallyExclusive(keyApprovalMode, keyNoApprovalMode)

	return cmd.MarkFlagFilename("config-file", configFileExtensions...)
}
