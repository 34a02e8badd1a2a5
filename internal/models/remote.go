package models

import "strings"

// Host is the hosting provider family a remote points at.
type Host string

const (
	HostGitHub Host = "github"
	HostGitLab Host = "gitlab"
)

// KnownHosts is scanned in order; the first host contained in a URL wins.
var KnownHosts = []Host{HostGitHub, HostGitLab}

// DetectHost returns the first known host whose name appears anywhere in url,
// or the empty Host when none does.
func DetectHost(url string) Host {
	lower := strings.ToLower(url)
	for _, h := range KnownHosts {
		if strings.Contains(lower, string(h)) {
			return h
		}
	}
	return ""
}

type ConnectionType int

const (
	ConnectionSSH ConnectionType = iota + 1
	ConnectionHTTPS
)

func (c ConnectionType) String() string {
	switch c {
	case ConnectionSSH:
		return "SSH"
	case ConnectionHTTPS:
		return "HTTPS"
	}
	return "unknown"
}

type ActionType int

const (
	ActionFetch ActionType = iota + 1
	ActionPush
)

var actionTypes = map[string]ActionType{
	"fetch": ActionFetch,
	"push":  ActionPush,
}

// ParseActionType maps the parenthesized suffix of a `git remote -v` line
// ("fetch", "push") to an ActionType.
func ParseActionType(s string) (ActionType, bool) {
	a, ok := actionTypes[strings.ToLower(s)]
	return a, ok
}

func (a ActionType) String() string {
	switch a {
	case ActionFetch:
		return "FETCH"
	case ActionPush:
		return "PUSH"
	}
	return "unknown"
}

// Remote is one line of `git remote -v` output.
type Remote struct {
	Name       string
	URL        string // host/org/repo, no scheme, no .git suffix
	Host       Host
	OrgOrUser  string
	Repo       string
	Connection ConnectionType
	Action     ActionType
}
