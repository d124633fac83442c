package main

import (
	"fmt"
	"os"

	"github.com/goliatone/gitservice/pkg/gitservice"
	"github.com/goliatone/gitservice/pkg/locator"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Successful detection
	ExitGenericError = 1 // Generic error
	ExitNotARepo     = 2 // Path is not inside a git repository
	ExitNoRemote     = 3 // Repository has no remote configured
	ExitBadRemote    = 4 // Remote URL could not be parsed
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gitservice: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps structured library errors to exit codes.
func exitCode(err error) int {
	switch {
	case locator.IsNotARepository(err):
		return ExitNotARepo
	case locator.IsNoRemote(err):
		return ExitNoRemote
	case gitservice.IsUnrecognizedForm(err), gitservice.IsMissingPathComponents(err):
		return ExitBadRemote
	}
	return ExitGenericError
}
