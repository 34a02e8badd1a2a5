package web

import (
	"errors"
	"fmt"
)

// ErrUnsupportedHost indicates the remote is neither github nor gitlab.
var ErrUnsupportedHost = errors.New("unsupported web host")

// UsageError means a command was recognised but is missing something. It is
// reported to the user without failing the process.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// UnrecognizedCommandError is returned for a command word that matches no
// keyword, commit hash or pull request number.
type UnrecognizedCommandError struct {
	Command     string
	Suggestions []string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command %q", e.Command)
}
