package git

import (
	"strings"
	"testing"

	"github.com/Johannes-Berggren/webgit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseRemotesOriginOnly(t *testing.T) {
	input := "origin\thttps://github.com/apache/kafka.git (fetch)\norigin\thttps://github.com/apache/kafka.git (push)\n"

	remotes, err := ParseRemotes(input)
	require.NoError(t, err)
	require.Len(t, remotes, 2)

	assert.Equal(t, models.Remote{
		Name:       "origin",
		URL:        "github.com/apache/kafka",
		Host:       models.HostGitHub,
		OrgOrUser:  "apache",
		Repo:       "kafka",
		Connection: models.ConnectionHTTPS,
		Action:     models.ActionFetch,
	}, remotes[0])

	assert.Equal(t, "origin", remotes[1].Name)
	assert.Equal(t, "github.com/apache/kafka", remotes[1].URL)
	assert.Equal(t, models.ActionPush, remotes[1].Action)
}

func TestParseRemotesOriginUpstream(t *testing.T) {
	input := strings.Join([]string{
		"origin\tgit@gitlab.com:user/project.git (fetch)",
		"origin\tgit@gitlab.com:user/project.git (push)",
		"upstream\tgit@gitlab.com:org/project.git (fetch)",
		"upstream\tgit@gitlab.com:org/project.git (push)",
	}, "\n")

	remotes, err := ParseRemotes(input)
	require.NoError(t, err)
	require.Len(t, remotes, 4)

	wants := []struct {
		name   string
		url    string
		org    string
		action models.ActionType
	}{
		{"origin", "gitlab.com/user/project", "user", models.ActionFetch},
		{"origin", "gitlab.com/user/project", "user", models.ActionPush},
		{"upstream", "gitlab.com/org/project", "org", models.ActionFetch},
		{"upstream", "gitlab.com/org/project", "org", models.ActionPush},
	}

	for i, want := range wants {
		got := remotes[i]
		assert.Equal(t, want.name, got.Name, "remote %d", i)
		assert.Equal(t, want.url, got.URL, "remote %d", i)
		assert.Equal(t, models.HostGitLab, got.Host, "remote %d", i)
		assert.Equal(t, want.org, got.OrgOrUser, "remote %d", i)
		assert.Equal(t, "project", got.Repo, "remote %d", i)
		assert.Equal(t, models.ConnectionSSH, got.Connection, "remote %d", i)
		assert.Equal(t, want.action, got.Action, "remote %d", i)
	}
}

func TestParseRemotesFatal(t *testing.T) {
	tests := []string{
		"",
		"fatal: cannot change to 'hello_world': No such file or directory",
		"fatal: not a git repository (or any of the parent directories): .git",
	}

	for _, input := range tests {
		_, err := ParseRemotes(input)
		require.ErrorIs(t, err, ErrRepositoryUnavailable, "input %q", input)
	}
}

func TestParseRemotesMalformedLineFailsWholeParse(t *testing.T) {
	input := "origin\tgit@github.com:user/repo.git (fetch)\norigin\tssh://git@github.com/user/repo.git (push)\n"

	remotes, err := ParseRemotes(input)
	require.ErrorIs(t, err, ErrParse)
	assert.Nil(t, remotes)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "remote", perr.Kind)
}

func TestParseRemoteLineCustomDomain(t *testing.T) {
	remote, err := ParseRemoteLine("origin\tgit@github.company.io:user/project.git (fetch)")
	require.NoError(t, err)
	assert.Equal(t, "github.company.io/user/project", remote.URL)
	assert.Equal(t, models.HostGitHub, remote.Host)

	// Host detection scans the whole URL, not just the host segment.
	remote, err = ParseRemoteLine("origin\thttps://code.example.com/gitlab-mirror/tool.git (fetch)")
	require.NoError(t, err)
	assert.Equal(t, models.HostGitLab, remote.Host)

	remote, err = ParseRemoteLine("origin\thttps://code.example.com/team/tool (fetch)")
	require.NoError(t, err)
	assert.Equal(t, models.Host(""), remote.Host)
}

func TestParseRemoteLineRejectsUnknownAction(t *testing.T) {
	_, err := ParseRemoteLine("origin\thttps://github.com/a/b.git (mirror)")
	require.ErrorIs(t, err, ErrParse)
}

func TestParseRemoteLineRejectsShortPath(t *testing.T) {
	_, err := ParseRemoteLine("origin\thttps://github.com/kafka.git (fetch)")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "url", perr.Kind)
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"github.com/apache/kafka.git", "github.com/apache/kafka"},
		{"gitlab.com:user/project.git", "gitlab.com/user/project"},
		{"github.com/apache/kafka/", "github.com/apache/kafka"},
		{"github.com/apache/kafka.git/", "github.com/apache/kafka"},
		{"github.com/apache/kafka", "github.com/apache/kafka"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeURL(tt.in), tt.in)
	}
}

func TestParseRemoteLineURLIsSanitized(t *testing.T) {
	hostGen := rapid.StringMatching(`[a-z0-9]{1,8}(\.[a-z0-9]{1,8}){0,2}`)
	segment := rapid.StringMatching(`[a-z0-9][a-z0-9_-]{0,11}`)

	rapid.Check(t, func(t *rapid.T) {
		host := hostGen.Draw(t, "host")
		org := segment.Draw(t, "org")
		repo := segment.Draw(t, "repo")
		ssh := rapid.Bool().Draw(t, "ssh")
		suffix := rapid.SampledFrom([]string{"", ".git", "/", ".git/"}).Draw(t, "suffix")
		action := rapid.SampledFrom([]string{"fetch", "push"}).Draw(t, "action")

		url := "https://" + host + "/" + org + "/" + repo + suffix
		if ssh {
			url = "git@" + host + ":" + org + "/" + repo + suffix
		}

		remote, err := ParseRemoteLine("origin\t" + url + " (" + action + ")")
		if err != nil {
			t.Fatalf("parse %q: %v", url, err)
		}

		if strings.Contains(remote.URL, ":") {
			t.Fatalf("url %q contains ':'", remote.URL)
		}
		if strings.HasSuffix(remote.URL, "/") || strings.HasSuffix(remote.URL, ".git") {
			t.Fatalf("url %q not sanitized", remote.URL)
		}
		if remote.OrgOrUser != org || remote.Repo != repo {
			t.Fatalf("segments of %q = %q/%q", remote.URL, remote.OrgOrUser, remote.Repo)
		}
	})
}
