package web

import (
	"fmt"

	"github.com/Johannes-Berggren/webgit/internal/models"
)

// Page is a kind of web page a hosting provider serves.
type Page string

const (
	PageOrgOrUser Page = "org_or_user"
	PageCommit    Page = "commit"
	PageCommits   Page = "commits"
	PageIssue     Page = "issue"
	PageIssues    Page = "issues"
	PageCompare   Page = "compare"
	PagePull      Page = "pull"
	PagePulls     Page = "prs"
	PageMyPulls   Page = "myprs"
	PageTree      Page = "tree"
	PageTreeFile  Page = "tree_file"
)

// The github and gitlab URL schemes. Slots are positional.
var templates = map[Page]map[models.Host]string{
	PageOrgOrUser: {
		models.HostGitHub: "https://github.com/%s",
		models.HostGitLab: "https://gitlab.com/%s",
	},
	PageCommit: {
		models.HostGitHub: "https://%s/commit/%s",
		models.HostGitLab: "https://%s/-/commit/%s",
	},
	PageCommits: {
		models.HostGitHub: "https://%s/commits",
		models.HostGitLab: "https://%s/-/commits",
	},
	PageIssue: {
		models.HostGitHub: "https://%s/issues/%s",
		models.HostGitLab: "https://%s/-/issues/%s",
	},
	PageIssues: {
		models.HostGitHub: "https://%s/issues",
		models.HostGitLab: "https://%s/-/issues",
	},
	// github: to url, to branch, from org, from branch
	// gitlab: to url, from branch, to branch
	PageCompare: {
		models.HostGitHub: "https://%s/compare/%s...%s:%s?expand=1",
		models.HostGitLab: "https://%s/-/compare?from=%s&to=%s",
	},
	PagePull: {
		models.HostGitHub: "https://%s/pull/%s",
		models.HostGitLab: "https://%s/-/merge_requests/%s",
	},
	PagePulls: {
		models.HostGitHub: "https://%s/pulls",
		models.HostGitLab: "https://%s/-/merge_requests",
	},
	PageMyPulls: {
		models.HostGitHub: "https://%s/pulls?q=is%%3Apr+author%%3A%s",
		models.HostGitLab: "https://%s/-/merge_requests?scope=all&state=all&author_username=%s",
	},
	PageTree: {
		models.HostGitHub: "https://%s/tree/%s",
		models.HostGitLab: "https://%s/-/tree/%s",
	},
	PageTreeFile: {
		models.HostGitHub: "https://%s/blob/%s/%s",
		models.HostGitLab: "https://%s/-/blob/%s/%s",
	},
}

// Address fills the template for page on host.
func Address(page Page, host models.Host, args ...any) (string, error) {
	tmpl, ok := templates[page][host]
	if !ok {
		if host == "" {
			host = "unknown"
		}
		return "", fmt.Errorf("%w: no %s page for %s", ErrUnsupportedHost, page, host)
	}
	return fmt.Sprintf(tmpl, args...), nil
}
