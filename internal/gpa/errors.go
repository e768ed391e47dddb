package gpa

import (
	"errors"
	"fmt"
	"strings"
)

// Structural validation errors: the input was readable but does not have the
// minimum shape needed to compute an average.
var (
	ErrNoHeader    = errors.New("csv has no header row")
	ErrNoValidData = errors.New("no valid GPA values found")
)

// NoColumnError reports that no header matched a GPA column. It carries the
// headers that were found so the message can name them.
type NoColumnError struct {
	Headers []string
}

func (e *NoColumnError) Error() string {
	return fmt.Sprintf("could not find a GPA column, found headers: %s",
		strings.Join(e.Headers, ", "))
}

// IsValidationError reports whether err is one of the structural validation
// failures, as opposed to a file-access or unanticipated fault.
func IsValidationError(err error) bool {
	var colErr *NoColumnError
	return errors.Is(err, ErrNoHeader) ||
		errors.Is(err, ErrNoValidData) ||
		errors.As(err, &colErr)
}
