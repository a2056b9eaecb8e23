package cli

import "errors"

// Exit codes for layoutdiff, following diff(1).
const (
	// ExitSuccess indicates the documents are identical or --exit-code was not set.
	ExitSuccess = 0

	// ExitDifferences indicates differences were found with --exit-code set.
	ExitDifferences = 1

	// ExitError indicates invalid usage, configuration or I/O failure.
	ExitError = 2
)

// ErrDifferencesFound signals differing documents when --exit-code is set.
var ErrDifferencesFound = errors.New("differences found")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDifferencesFound):
		return ExitDifferences
	default:
		return ExitError
	}
}
