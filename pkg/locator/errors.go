package locator

import (
	"errors"
	"fmt"
)

// NotARepositoryError reports a path that is not inside a Git repository.
type NotARepositoryError struct {
	Path string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("locator: %s is not inside a git repository", e.Path)
}

// NoRemoteError reports a repository with no usable remote configured.
type NoRemoteError struct {
	Path string
}

func (e *NoRemoteError) Error() string {
	return fmt.Sprintf("locator: repository at %s has no remote configured", e.Path)
}

// IsNotARepository returns true if the error is a NotARepositoryError.
func IsNotARepository(err error) bool {
	var repoErr *NotARepositoryError
	return errors.As(err, &repoErr)
}

// IsNoRemote returns true if the error is a NoRemoteError.
func IsNoRemote(err error) bool {
	var remoteErr *NoRemoteError
	return errors.As(err, &remoteErr)
}
