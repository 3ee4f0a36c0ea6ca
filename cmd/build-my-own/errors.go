package main

import (
	"errors"

	"github.com/gorewood/build-my-own/internal/output"
	"github.com/gorewood/build-my-own/internal/project"
)

// toExitError maps orchestrator failures onto CLI exit codes. The project
// kind wins over any *output.ExitError further down the chain, such as the
// one git returns.
func toExitError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch project.KindOf(err) {
	case project.KindInvalidURL, project.KindUnsupportedEditor, project.KindDirectoryNotFound:
		return output.NewUserErrorWithCause(msg, err)
	case project.KindDirectoryExists:
		return output.NewConflictErrorWithCause(msg, err)
	case project.KindCloneSpawnFailed:
		return output.NewSystemErrorWithCause(msg+"\nIs git installed and on your PATH?", err)
	case "":
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) {
			return err
		}
	}
	return output.NewSystemErrorWithCause(msg, err)
}
