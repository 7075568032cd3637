package exec

import "io"

// CommandConfig configures a command for execution
type CommandConfig struct {
	Args []string
	// Dir is the working directory of the command. An empty value means the working directory of the calling process.
	Dir    string
	Name   string
	Stderr io.Writer
	Stdout io.Writer
}
