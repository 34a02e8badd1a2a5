package git

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Johannes-Berggren/webgit/internal/models"
)

var (
	remoteLineRe = regexp.MustCompile(`(?i)^(\S+)\s+(https://|git@)(\S+)\s+\((\w+)\)$`)
	remoteURLRe  = regexp.MustCompile(`^(.*)/(.*)/(.*)$`)
)

// Output prefixes git prints when -C points somewhere unusable.
var fatalPrefixes = []string{
	"fatal: cannot change to",
	"fatal: not a git repository",
}

func checkFatal(output string) error {
	for _, p := range fatalPrefixes {
		if strings.HasPrefix(output, p) {
			return fmt.Errorf("%w: %s", ErrRepositoryUnavailable, strings.TrimSpace(output))
		}
	}
	return nil
}

// ParseRemotes parses `git remote -v` output into one Remote per line,
// in input order. A single malformed line fails the whole parse.
func ParseRemotes(output string) ([]models.Remote, error) {
	if output == "" {
		return nil, ErrRepositoryUnavailable
	}
	if err := checkFatal(output); err != nil {
		return nil, err
	}

	var remotes []models.Remote
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		remote, err := ParseRemoteLine(line)
		if err != nil {
			return nil, err
		}
		remotes = append(remotes, remote)
	}

	if len(remotes) == 0 {
		return nil, ErrRepositoryUnavailable
	}

	return remotes, nil
}

// ParseRemoteLine parses a single line such as
// "origin\tgit@github.com:user/repo.git (fetch)".
func ParseRemoteLine(line string) (models.Remote, error) {
	m := remoteLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return models.Remote{}, &ParseError{Kind: "remote", Line: line}
	}

	action, ok := models.ParseActionType(m[4])
	if !ok {
		return models.Remote{}, &ParseError{Kind: "remote", Line: line}
	}

	remote := models.Remote{
		Name:       m[1],
		URL:        SanitizeURL(m[3]),
		Connection: models.ConnectionSSH,
		Action:     action,
	}
	if strings.EqualFold(m[2], "https://") {
		remote.Connection = models.ConnectionHTTPS
	}

	parts := remoteURLRe.FindStringSubmatch(remote.URL)
	if parts == nil {
		return models.Remote{}, &ParseError{Kind: "url", Line: line}
	}
	remote.Host = models.DetectHost(remote.URL)
	remote.OrgOrUser = parts[2]
	remote.Repo = parts[3]

	return remote, nil
}

// SanitizeURL turns "github.com:org/repo.git/" into "github.com/org/repo".
func SanitizeURL(url string) string {
	url = strings.ReplaceAll(url, ":", "/")
	url = strings.TrimSuffix(url, "/")
	url = strings.TrimSuffix(url, ".git")
	return url
}
