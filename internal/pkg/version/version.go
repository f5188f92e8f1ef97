package version

import (
	_ "embed"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- || echo dirty > dirty.txt; [ -f dirty.txt ] || echo clean > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = gitInfo{
	Commit: commit,
	Branch: branch,
	Tag:    tag,
	Dirty:  dirty == "dirty",
}

// GetGitInfo returns a copy of the gitInfo struct containing git metadata.
func GetGitInfo() gitInfo {
	return info
}

// Short returns a one-line version string for startup logs.
func Short() string {
	var parts []string
	if info.Tag != "" && info.Tag != "none" {
		parts = append(parts, info.Tag)
	}
	if len(info.Commit) >= 8 {
		parts = append(parts, info.Commit[:8])
	} else if info.Commit != "" {
		parts = append(parts, info.Commit)
	}
	if info.Dirty {
		parts = append(parts, "dirty")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "-")
}
