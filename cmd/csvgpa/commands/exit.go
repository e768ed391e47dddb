package commands

import (
	"errors"
	"fmt"

	"github.com/wonny/csvgpa/internal/gpa"
)

// Process exit statuses, one per failure kind.
const (
	ExitOK         = 0
	ExitUnexpected = 1
	ExitNotFound   = 2
	ExitValidation = 3
)

// notFoundError marks a missing input file so it gets its own exit status
// and message naming the path.
type notFoundError struct {
	path string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.path)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var nf *notFoundError
	if errors.As(err, &nf) {
		return ExitNotFound
	}

	if gpa.IsValidationError(err) {
		return ExitValidation
	}

	return ExitUnexpected
}

// isExpectedFailure reports whether err belongs to the anticipated failure
// taxonomy (missing file, structural validation) rather than being an
// unanticipated fault.
func isExpectedFailure(err error) bool {
	var nf *notFoundError
	return errors.As(err, &nf) || gpa.IsValidationError(err)
}
