package shared

import (
	"fmt"
	"os"

	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

// Exit codes returned by the CLI.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
	ExitNotFound   = 4
	ExitServer     = 5
)

// ExitCode maps an error to the CLI exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case gwoscerrors.IsValidation(err):
		return ExitValidation
	case gwoscerrors.IsNotFound(err):
		return ExitNotFound
	case gwoscerrors.IsServer(err):
		return ExitServer
	default:
		return ExitError
	}
}

// HandleExitError prints an error and exits with its mapped code.
func HandleExitError(err error) {
	if err == nil {
		os.Exit(ExitOK)
	}
	fmt.Fprintln(os.Stderr, RenderError(err.Error()))
	os.Exit(ExitCode(err))
}
