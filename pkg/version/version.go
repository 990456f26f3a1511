// Package version derives the build identity reported in logs and the
// ops health endpoint from the binary's embedded VCS metadata.
package version

import "runtime/debug"

// AppName is the application name used in version strings and client
// user agents.
const AppName = "eventcore"

// commitOverride is set via -ldflags for container builds where .git is
// unavailable. Empty means no override.
var commitOverride string

// GitCommit is the short commit hash, suffixed "-dirty" when the
// worktree carried local changes, or "dev" when build info is
// unavailable (go test, non-git builds).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shortRev(commitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	commit := shortRev(revision)
	if dirty {
		commit += "-dirty"
	}
	return commit
}

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "eventcore/<commit>" for startup logs and user-agent
// strings.
func Full() string {
	return AppName + "/" + GitCommit
}
