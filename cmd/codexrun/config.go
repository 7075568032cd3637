package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rwx-research/codex-wrapper/internal/cli"
	"github.com/rwx-research/codex-wrapper/internal/codex"
	"github.com/rwx-research/codex-wrapper/internal/errors"
)

// Config is the internal representation of the configuration.
type Config struct {
	Executable        string `mapstructure:"executable"`
	WorkingDir        string `mapstructure:"working-dir"`
	ApprovalMode      string `mapstructure:"approval-mode"`
	NoApprovalMode    bool   `mapstructure:"no-approval-mode"`
	FullAutoErrorMode string `mapstructure:"full-auto-error-mode"`
	Debug             bool   `mapstructure:"debug"`
	JSON              bool   `mapstructure:"json"`
	DryRun            bool   `mapstructure:"dry-run"`

	// ExtraArgs is either a list of arguments or a single string that is split like a shell would.
	ExtraArgs any `mapstructure:"extra-args"`

	// fullAutoErrorModeSet tracks whether the error mode was configured at all, as an empty value is passed along.
	fullAutoErrorModeSet bool
}

const (
	configFileName = ".codexrun"
	envPrefix      = "CODEXRUN"
)

var configFileExtensions = []string{"yaml", "yml"}

// findInParentDir starts at the current working directory and walks up to the root, trying to find the specified
// fileName
func findInParentDir(fileName string) (string, error) {
	var match string
	var walk func(string, string) error

	walk = func(base, root string) error {
		match = filepath.Join(base, fileName)

		info, err := os.Stat(match)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.WithStack(err)
		}

		if info != nil {
			return nil
		}

		if base == root {
			return errors.WithStack(os.ErrNotExist)
		}

		return walk(filepath.Dir(base), root)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}

	volumeName := filepath.VolumeName(pwd)
	if volumeName == "" {
		volumeName = string(os.PathSeparator)
	}

	if err := walk(pwd, volumeName); err != nil {
		return "", errors.WithStack(err)
	}

	return match, nil
}

func findConfigFile() (string, error) {
	possibleConfigFilePaths := make([]string, 0, len(configFileExtensions))

	for _, extension := range configFileExtensions {
		configFilePath, err := findInParentDir(fmt.Sprintf("%s.%s", configFileName, extension))
		if err == nil {
			possibleConfigFilePaths = append(possibleConfigFilePaths, configFilePath)
			continue
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.NewConfigurationError("unable to look for a config file: %s", err)
		}
	}

	if len(possibleConfigFilePaths) > 1 {
		return "", errors.NewConfigurationError(
			"found multiple config files (%s), please remove one or specify one using '--config-file'",
			strings.Join(possibleConfigFilePaths, ", "),
		)
	}

	if len(possibleConfigFilePaths) == 0 {
		return "", nil
	}

	return possibleConfigFilePaths[0], nil
}

// InitConfig reads our configuration from the system.
// Environment variables take precedence over a config file.
// Flags take precedence over all other options.
func InitConfig(cmd *cobra.Command, cliArgs CliArgs) (cfg Config, err error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		keyExecutable, keyWorkingDir, keyApprovalMode, keyNoApprovalMode, keyFullAutoErrorMode,
		keyExtraArgs, keyDebug, keyJSON, keyDryRun,
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return cfg, errors.NewInternalError("unable to bind flag %q: %s", key, err)
		}
	}

	configFilePath := cliArgs.configFilePath
	if configFilePath == "" {
		if configFilePath, err = findConfigFile(); err != nil {
			return cfg, errors.WithStack(err)
		}
	}

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)

		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.NewConfigurationError("unable to read config file %q: %s", configFilePath, err)
		}
	}

	if err := v.UnmarshalExact(&cfg); err != nil {
		return cfg, errors.NewConfigurationError("unable to parse configuration: %s", err)
	}

	// The default of an unset flag doesn't count as being set.
	cfg.fullAutoErrorModeSet = v.IsSet(keyFullAutoErrorMode)

	return cfg, nil
}

// RunConfig converts the configuration into the options for a single invocation
func (cfg Config) RunConfig() (cli.RunConfig, error) {
	extraArgs, err := cfg.extraArgs()
	if err != nil {
		return cli.RunConfig{}, errors.WithStack(err)
	}

	opts := []codex.Option{
		codex.WithExecutable(cfg.Executable),
		codex.WithWorkingDir(cfg.WorkingDir),
		codex.WithApprovalMode(cfg.ApprovalMode),
		codex.WithExtraArgs(extraArgs...),
	}

	if cfg.NoApprovalMode {
		opts = append(opts, codex.WithoutApprovalMode())
	}

	if cfg.fullAutoErrorModeSet {
		opts = append(opts, codex.WithFullAutoErrorMode(cfg.FullAutoErrorMode))
	}

	return cli.RunConfig{
		Codex:  codex.NewConfig(opts...),
		DryRun: cfg.DryRun,
		JSON:   cfg.JSON,
	}, nil
}

func (cfg Config) extraArgs() ([]string, error) {
	switch extraArgs := cfg.ExtraArgs.(type) {
	case nil:
		return nil, nil
	case string:
		args, err := shellwords.Parse(extraArgs)
		if err != nil {
			return nil, errors.NewConfigurationError("unable to parse %q into shell arguments: %s", extraArgs, err)
		}
		return args, nil
	default:
		args, err := cast.ToStringSliceE(extraArgs)
		if err != nil {
			return nil, errors.NewConfigurationError("extra-args must be a string or a list of strings: %s", err)
		}
		return args, nil
	}
}
