package git

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/Johannes-Berggren/webgit/internal/models"
)

const defaultTrackedRemote = "upstream"

var (
	branchLineRe = regexp.MustCompile(`^\*\s+(\S+)\s+([0-9a-f]{7,40})\b(.*)$`)
	trackingRe   = regexp.MustCompile(`^\s+\[([^\s/\]]+)/([^\]]*)\]`)
)

// ParseCurrentBranch picks the line marked with "*" out of `git branch -vv`
// output. It returns nil when no branch is checked out.
func ParseCurrentBranch(output string) (*models.BranchInfo, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "*") {
			return ParseBranchLine(line)
		}
	}

	return nil, scanner.Err()
}

// ParseBranchLine parses: * name hash [remote/branch: ahead 1] subject
func ParseBranchLine(line string) (*models.BranchInfo, error) {
	m := branchLineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, &ParseError{Kind: "branch", Line: line}
	}

	info := &models.BranchInfo{
		FromBranch: m[1],
		ToRepo:     defaultTrackedRemote,
		ToBranch:   m[1],
	}

	// Parse upstream info [origin/main: ahead 2, behind 1]
	if t := trackingRe.FindStringSubmatch(m[3]); t != nil {
		info.ToRepo = t[1]
		info.ToBranch = t[2]
	}

	if i := strings.Index(info.ToBranch, ":"); i >= 0 {
		info.ToBranch = info.ToBranch[:i]
	}

	return info, nil
}
