package models

// BranchInfo describes the checked-out branch and what it tracks.
type BranchInfo struct {
	FromBranch string
	ToRepo     string // e.g. "upstream"
	ToBranch   string // tracked branch, ahead/behind annotation stripped
}
