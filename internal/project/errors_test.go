package project

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := newError(KindDirectoryExists, "directory /w/widget already exists", fs.ErrExist)
	wrapped := fmt.Errorf("bootstrap: %w", err)

	assert.ErrorIs(t, wrapped, ErrDirectoryExists)
	assert.ErrorIs(t, wrapped, fs.ErrExist)
	assert.NotErrorIs(t, wrapped, ErrCloneFailed)
	assert.Equal(t, KindDirectoryExists, KindOf(wrapped))
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindCloneFailed}, "clone_failed"},
		{newError(KindInvalidURL, "invalid GitHub URL", nil), "invalid GitHub URL"},
		{newError(KindCloneFailed, "failed to clone x.git", errors.New("exit status 128")), "failed to clone x.git: exit status 128"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestIsCloneFailure(t *testing.T) {
	assert.True(t, IsCloneFailure(newError(KindCloneFailed, "x", nil)))
	assert.True(t, IsCloneFailure(newError(KindCloneSpawnFailed, "x", nil)))
	assert.False(t, IsCloneFailure(newError(KindRulesInstallFailed, "x", nil)))
	assert.False(t, IsCloneFailure(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
