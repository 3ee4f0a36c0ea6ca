package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/build-my-own/internal/output"
)

// RunContext executes a git command with the given context and arguments.
// Returns an *output.ExitError on failure.
func RunContext(ctx context.Context, args ...string) (string, error) {
	return RunIn(ctx, "", args...)
}

// RunIn executes a git command inside dir. An empty dir means the current
// working directory.
func RunIn(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", err)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Clone runs `git clone -- <url> <dir>`. No timeout is applied beyond ctx.
// A url starting with "-" is treated as a repository, never as an option.
func Clone(ctx context.Context, url, dir string) error {
	_, err := RunContext(ctx, "clone", "--quiet", "--", url, dir)
	return err
}

// Version returns the installed git version string.
func Version(ctx context.Context) (string, error) {
	out, err := RunContext(ctx, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(out, "git version "), nil
}

// ShortHEAD returns the abbreviated HEAD commit of the repository at dir.
func ShortHEAD(ctx context.Context, dir string) (string, error) {
	return RunIn(ctx, dir, "rev-parse", "--short", "HEAD")
}

// IsSpawnError reports whether err came from git failing to start at all.
func IsSpawnError(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr)
}
