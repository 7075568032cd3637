package main

import (
	"os"

	"github.com/spf13/cobra"

	codexrun "github.com/rwx-research/codex-wrapper"
	"github.com/rwx-research/codex-wrapper/internal/cli"
	"github.com/rwx-research/codex-wrapper/internal/errors"
	"github.com/rwx-research/codex-wrapper/internal/exec"
	"github.com/rwx-research/codex-wrapper/internal/logging"
)

var (
	cliArgs CliArgs
	service cli.Service
	runCfg  cli.RunConfig

	rootCmd = &cobra.Command{
		Use:               "codexrun [flags] PROMPT [ARGS...]",
		Short:             "Run codex with a prompt and relay its output",
		Long:              descriptionCodexrun,
		Args:              requirePrompt,
		Version:           codexrun.Version,
		PersistentPreRunE: initCLIService,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCfg.Prompt = args[0]
			runCfg.Args = args[1:]

			return errors.WithStack(service.Run(cmd.Context(), runCfg))
		},
		SilenceErrors: true, // Errors are manually printed in 'main'
		SilenceUsage:  true, // Disables usage text on error
	}
)

func requirePrompt(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.NewInputError("no prompt was provided\n\nUsage:\n  %s", cmd.UseLine())
	}

	return nil
}

func configureRootCmd(cmd *cobra.Command) error {
	if err := addFlags(cmd, &cliArgs); err != nil {
		return errors.WithStack(err)
	}

	// Everything after the prompt is passed along to codex, flags included.
	cmd.Flags().SetInterspersed(false)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("{{.Version}}\n")

	return nil
}

func initCLIService(cmd *cobra.Command, _ []string) error {
	cfg, err := InitConfig(cmd, cliArgs)
	if err != nil {
		return errors.WithStack(err)
	}

	runCfg, err = cfg.RunConfig()
	if err != nil {
		return errors.WithStack(err)
	}

	logger := logging.NewProductionLogger(os.Stdout, os.Stderr)
	if cfg.Debug {
		logger = logging.NewDebugLogger(os.Stdout, os.Stderr)
	}

	service = cli.Service{
		Log:        logger,
		TaskRunner: exec.Local{},
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}

	return nil
}
