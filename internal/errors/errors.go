// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ConfigurationError represent a configuration error. When used, it should ideally also point towards the configuration
// value that caused this error to occur.
type ConfigurationError struct {
	E error
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(msg string, a ...any) ConfigurationError {
	return ConfigurationError{E: xerrors.Errorf(msg, a...)}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e ConfigurationError) Unwrap() error {
	return e.E
}

// ExecutionError is an error that was encountered during the execution of a different task. Specifically, this is being
// used by `codexrun` to pass along the exit code of the wrapped executable.
type ExecutionError struct {
	E    error
	Code int
}

// NewExecutionError returns a new ExecutionError
func NewExecutionError(code int, msg string, a ...any) ExecutionError {
	return ExecutionError{Code: code, E: xerrors.Errorf(msg, a...)}
}

// AsExecutionError checks whether the error is an execution error.
func AsExecutionError(err error) (ExecutionError, bool) {
	var e ExecutionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ExecutionError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e ExecutionError) Unwrap() error {
	return e.E
}

// InputError is an error caused by user input
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InputError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e InputError) Unwrap() error {
	return e.E
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InternalError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e InternalError) Unwrap() error {
	return e.E
}

// LaunchError is returned when a sub-process could not be started at all, e.g. because the executable does not exist
// or is not executable. It is never used for a sub-process that started and then exited with a non-zero code.
type LaunchError struct {
	E          error
	Executable string
}

// NewLaunchError returns a new LaunchError for the given executable
func NewLaunchError(executable string, err error) LaunchError {
	return LaunchError{E: err, Executable: executable}
}

// AsLaunchError checks whether the error is a launch error
func AsLaunchError(err error) (LaunchError, bool) {
	var e LaunchError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e LaunchError) Error() string {
	return fmt.Sprintf("unable to launch %q: %s", e.Executable, e.E)
}

// Unwrap returns the underlying OS error
func (e LaunchError) Unwrap() error {
	return e.E
}

// Description implements the decorated error interface
func (e LaunchError) Description() string {
	return fmt.Sprintf("The operating system refused to start %q: %s", e.Executable, e.E)
}

// Resolution implements the decorated error interface
func (e LaunchError) Resolution() string {
	return fmt.Sprintf(
		"Make sure %q is installed and on your PATH, or point to it explicitly using the '--executable' flag. "+
			"If a working directory was configured, make sure it exists.",
		e.Executable,
	)
}

// Type implements the decorated error interface
func (e LaunchError) Type() string {
	return "Launch Error"
}

// SystemError is returned when the CLI encountered a system error. This is most likely an error during file read or
// while waiting on a sub-process.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SystemError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e SystemError) Unwrap() error {
	return e.E
}
