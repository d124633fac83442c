package gitservice

import (
	"errors"
	"fmt"
)

// UnrecognizedFormError reports a remote URL whose shape matches no
// supported scheme grammar.
type UnrecognizedFormError struct {
	URL string
}

func (e *UnrecognizedFormError) Error() string {
	return fmt.Sprintf("gitservice: unrecognized remote URL form: %s", e.URL)
}

// MissingPathComponentsError reports a remote URL whose path lacks the
// owner and repository segments.
type MissingPathComponentsError struct {
	URL string
}

func (e *MissingPathComponentsError) Error() string {
	return fmt.Sprintf("gitservice: remote URL path lacks owner/repository segments: %s", e.URL)
}

// IsUnrecognizedForm returns true if the error is an UnrecognizedFormError.
func IsUnrecognizedForm(err error) bool {
	var formErr *UnrecognizedFormError
	return errors.As(err, &formErr)
}

// IsMissingPathComponents returns true if the error is a MissingPathComponentsError.
func IsMissingPathComponents(err error) bool {
	var pathErr *MissingPathComponentsError
	return errors.As(err, &pathErr)
}
