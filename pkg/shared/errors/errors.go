package errors

// CommandError carries a process exit code out of a command's RunE so the
// entry point can exit with it. The scan command uses it to implement the
// CI contract: non-zero exactly when the report has findings.
type CommandError struct {
	ExitCode    int
	CommonError string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError wraps err with an exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
	}
}
