package codex

const (
	// DefaultExecutable is the executable that is invoked unless configured otherwise.
	DefaultExecutable = "codex"
	// DefaultApprovalMode is the approval mode that is passed along unless configured otherwise.
	DefaultApprovalMode = "full-auto"

	approvalModeFlag      = "--approval-mode"
	fullAutoErrorModeFlag = "--full-auto-error-mode"
)

// Config holds everything needed to assemble a command line. A nil ApprovalMode or FullAutoErrorMode means that the
// corresponding flag is omitted; a non-nil pointer to an empty string is passed along as an empty value.
type Config struct {
	Executable        string
	WorkingDir        string
	ApprovalMode      *string
	FullAutoErrorMode *string
	ExtraArgs         []string
}

// Option modifies a Config. Options are applied on top of DefaultConfig by NewConfig.
type Option func(*Config)

// DefaultConfig returns the configuration used when nothing is overridden: `codex --approval-mode full-auto`.
func DefaultConfig() Config {
	return Config{
		Executable:   DefaultExecutable,
		ApprovalMode: String(DefaultApprovalMode),
	}
}

// NewConfig returns DefaultConfig with all options applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// String returns a pointer to s. It's meant for populating the optional fields of Config.
func String(s string) *string {
	return &s
}

// WithExecutable sets the executable to invoke.
func WithExecutable(name string) Option {
	return func(cfg *Config) {
		cfg.Executable = name
	}
}

// WithWorkingDir runs the executable in dir instead of the current working directory.
func WithWorkingDir(dir string) Option {
	return func(cfg *Config) {
		cfg.WorkingDir = dir
	}
}

// WithApprovalMode sets the value of `--approval-mode`.
func WithApprovalMode(mode string) Option {
	return func(cfg *Config) {
		cfg.ApprovalMode = String(mode)
	}
}

// WithoutApprovalMode omits `--approval-mode` entirely.
func WithoutApprovalMode() Option {
	return func(cfg *Config) {
		cfg.ApprovalMode = nil
	}
}

// WithFullAutoErrorMode sets the value of `--full-auto-error-mode`.
func WithFullAutoErrorMode(mode string) Option {
	return func(cfg *Config) {
		cfg.FullAutoErrorMode = String(mode)
	}
}

// WithExtraArgs appends arguments that are placed after the mode flags and before any per-call arguments.
func WithExtraArgs(args ...string) Option {
	return func(cfg *Config) {
		cfg.ExtraArgs = append(cfg.ExtraArgs, args...)
	}
}

func (c Config) clone() Config {
	clone := Config{
		Executable: c.Executable,
		WorkingDir: c.WorkingDir,
		ExtraArgs:  append([]string(nil), c.ExtraArgs...),
	}

	if c.ApprovalMode != nil {
		clone.ApprovalMode = String(*c.ApprovalMode)
	}

	if c.FullAutoErrorMode != nil {
		clone.FullAutoErrorMode = String(*c.FullAutoErrorMode)
	}

	return clone
}
