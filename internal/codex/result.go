package codex

// Result is the outcome of a single invocation that ran to completion.
type Result struct {
	// Args is the full command line that was executed, starting with the executable.
	Args     []string `json:"args"`
	ExitCode int      `json:"exit_code"`
	Stdout   string   `json:"stdout"`
	Stderr   string   `json:"stderr"`
}

// Success returns whether the executable exited with a zero exit code.
func (r Result) Success() bool {
	return r.ExitCode == 0
}
