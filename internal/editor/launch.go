package editor

import (
	"context"
	"fmt"
	"os/exec"
)

// Launcher opens an editor on a directory.
type Launcher interface {
	Launch(ctx context.Context, cfg Config, dir string) error
}

// ExecLauncher starts the editor's launch command as a child process.
type ExecLauncher struct{}

// Launch runs `<launch> <dir>` and waits for the command to return.
func (ExecLauncher) Launch(ctx context.Context, cfg Config, dir string) error {
	cmd := exec.CommandContext(ctx, cfg.LaunchCommand, dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launching %s: %w", cfg.DisplayName, err)
	}
	return nil
}
