package web

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Johannes-Berggren/webgit/internal/config"
	"github.com/Johannes-Berggren/webgit/internal/git"
	"github.com/Johannes-Berggren/webgit/internal/models"
)

var (
	commitHashRe  = regexp.MustCompile(`^[0-9a-f]{7,40}$`)
	pullRequestRe = regexp.MustCompile(`^#?\d+$`)
)

const DefaultCommand = "repo"

// Keywords are the named commands, in help order.
var Keywords = []string{
	"repo", "commits", "org", "user", "pr", "prs", "myprs", "issue", "issues", "tree",
}

// Flags are the option values that influence resolution.
type Flags struct {
	File    string
	Org     string
	GitUser string
	Remote  string
}

// Invocation is a command word, the tokens after it, and flags.
type Invocation struct {
	Command string
	Args    []string
	Flags   Flags
}

// Arg returns the i-th token after the command word, or "".
func (inv Invocation) Arg(i int) string {
	if i < len(inv.Args) {
		return inv.Args[i]
	}
	return ""
}

// BranchFunc returns the checked-out branch. It is only called by "pr".
type BranchFunc func(ctx context.Context) (*models.BranchInfo, error)

type Resolver struct {
	Remotes *git.Registry
	Branch  BranchFunc
	Config  config.Config
}

// Resolve turns an invocation into the address of a web page.
func (r *Resolver) Resolve(ctx context.Context, inv Invocation) (string, error) {
	command := inv.Command
	if command == "" {
		command = DefaultCommand
	}

	primary, err := r.Remotes.Upstream(inv.Flags.Remote)
	if err != nil {
		return "", err
	}
	url := primary.URL

	switch {
	case command == "repo":
		return "https://" + url, nil

	case command == "org":
		org := firstNonEmpty(inv.Flags.Org, inv.Flags.GitUser, primary.OrgOrUser)
		return Address(PageOrgOrUser, primary.Host, org)

	case command == "user":
		name, err := r.userName(inv.Flags.GitUser, inv.Flags.Org, r.Config.DefaultUser)
		if err != nil {
			return "", err
		}
		return Address(PageOrgOrUser, primary.Host, name)

	case command == "commits":
		return Address(PageCommits, primary.Host, url)

	case command == "prs":
		return Address(PagePulls, primary.Host, url)

	case command == "myprs":
		name, err := r.userName(inv.Flags.GitUser, inv.Arg(0), r.Config.DefaultUser, r.Config.LocalUser)
		if err != nil {
			return "", err
		}
		return Address(PageMyPulls, primary.Host, url, name)

	case command == "issue" || command == "issues":
		if number := strings.TrimPrefix(inv.Arg(0), "#"); number != "" {
			return Address(PageIssue, primary.Host, url, number)
		}
		return Address(PageIssues, primary.Host, url)

	case command == "tree":
		ref := inv.Arg(0)
		if ref == "" {
			return "", &UsageError{Message: `Git commit, branch or tag required after "tree"`}
		}
		if file := firstNonEmpty(inv.Flags.File, inv.Arg(1)); file != "" {
			return Address(PageTreeFile, primary.Host, url, ref, file)
		}
		return Address(PageTree, primary.Host, url, ref)

	case command == "pr":
		return r.compare(ctx, primary, inv)

	case commitHashRe.MatchString(command):
		if file := firstNonEmpty(inv.Flags.File, inv.Arg(0)); file != "" {
			return Address(PageTreeFile, primary.Host, url, command, file)
		}
		return Address(PageCommit, primary.Host, url, command)

	case pullRequestRe.MatchString(command):
		return Address(PagePull, primary.Host, url, strings.TrimPrefix(command, "#"))
	}

	return "", &UnrecognizedCommandError{Command: command, Suggestions: Suggest(command)}
}

// compare builds the "create pull request" page for
// pr [<from-remote>/]<from-branch> [<to-remote>/]<to-branch>.
func (r *Resolver) compare(ctx context.Context, primary *models.Remote, inv Invocation) (string, error) {
	fromRepo, fromBranch := splitRemoteBranch(inv.Arg(0))
	toRepo, toBranch := splitRemoteBranch(inv.Arg(1))

	if fromBranch == "" || toRepo == "" || toBranch == "" {
		if r.Branch == nil {
			return "", git.ErrNoCurrentBranch
		}
		current, err := r.Branch(ctx)
		if err != nil {
			return "", err
		}
		fromBranch = firstNonEmpty(fromBranch, current.FromBranch)
		toRepo = firstNonEmpty(toRepo, current.ToRepo)
		toBranch = firstNonEmpty(toBranch, current.ToBranch)
	}

	from := primary
	if primary.Name != fromRepo {
		var err error
		if from, err = r.Remotes.Origin(fromRepo); err != nil {
			return "", err
		}
	}

	to := primary
	if primary.Name != toRepo {
		var err error
		if to, err = r.Remotes.Upstream(toRepo); err != nil {
			return "", err
		}
	}

	if to.Host == models.HostGitLab {
		return Address(PageCompare, to.Host, to.URL, fromBranch, toBranch)
	}
	return Address(PageCompare, to.Host, to.URL, toBranch, from.OrgOrUser, fromBranch)
}

// userName picks the first non-empty candidate, else the owner of the
// origin remote.
func (r *Resolver) userName(candidates ...string) (string, error) {
	if name := firstNonEmpty(candidates...); name != "" {
		return name, nil
	}
	origin, err := r.Remotes.Origin("")
	if err != nil {
		return "", err
	}
	return origin.OrgOrUser, nil
}

// splitRemoteBranch splits "origin/feature/x" into ("origin", "feature/x").
// A token without "/" is a bare branch name.
func splitRemoteBranch(token string) (string, string) {
	remote, branch, ok := strings.Cut(token, "/")
	if !ok {
		return "", token
	}
	return remote, branch
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// String renders the invocation roughly as typed, for logs.
func (inv Invocation) String() string {
	return fmt.Sprintf("%s %s", inv.Command, strings.Join(inv.Args, " "))
}
