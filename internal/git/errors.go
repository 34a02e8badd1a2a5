package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRepositoryUnavailable indicates the directory is not a usable git working directory.
	ErrRepositoryUnavailable = errors.New("git repository not available")

	// ErrNoRemotesConfigured indicates a remote lookup against an empty remote list.
	ErrNoRemotesConfigured = errors.New("no git remotes configured")

	// ErrNoCurrentBranch indicates `git branch -vv` had no line marked with "*".
	ErrNoCurrentBranch = errors.New("no checked-out branch")

	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("unexpected git output")
)

// ParseError reports a line of git output that did not match its grammar.
type ParseError struct {
	Kind string // "remote", "branch", "url"
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s line %q", e.Kind, e.Line)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// CommandError is returned by ExecRunner when git exits unsuccessfully.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, strings.TrimSpace(e.Stderr))
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
