// Package git runs the git executable on behalf of build-my-own.
//
// Commands shell out to git, capture stdout/stderr and translate failures
// into *output.ExitError values:
//
//	out, err := git.RunContext(ctx, "version")
//	err := git.Clone(ctx, "https://github.com/org/widget.git", "/work/widget/widget-original")
//
// A git binary that cannot be started (missing from PATH, not executable)
// produces an error whose cause is the *exec.Error from the os/exec
// package, so callers can tell a spawn failure apart from git exiting with a
// non-zero status (cause *exec.ExitError).
package git
