package project

import "errors"

// Kind classifies a bootstrap failure.
type Kind string

// Failure kinds.
const (
	KindInvalidURL         Kind = "invalid_url"
	KindUnsupportedEditor  Kind = "unsupported_editor"
	KindDirectoryExists    Kind = "directory_exists"
	KindCreateFailed       Kind = "create_failed"
	KindCloneSpawnFailed   Kind = "clone_spawn_failed"
	KindCloneFailed        Kind = "clone_failed"
	KindRulesInstallFailed Kind = "rules_install_failed"
	KindDirectoryNotFound  Kind = "directory_not_found"
	// KindEditorLaunchFailed is only ever reported as a warning.
	KindEditorLaunchFailed Kind = "editor_launch_failed"
)

// Error is a classified failure with an optional underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidURL         = &Error{Kind: KindInvalidURL}
	ErrUnsupportedEditor  = &Error{Kind: KindUnsupportedEditor}
	ErrDirectoryExists    = &Error{Kind: KindDirectoryExists}
	ErrCreateFailed       = &Error{Kind: KindCreateFailed}
	ErrCloneSpawnFailed   = &Error{Kind: KindCloneSpawnFailed}
	ErrCloneFailed        = &Error{Kind: KindCloneFailed}
	ErrRulesInstallFailed = &Error{Kind: KindRulesInstallFailed}
	ErrDirectoryNotFound  = &Error{Kind: KindDirectoryNotFound}
)

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message == "":
		return string(e.Kind)
	case e.Err == nil:
		return e.Message
	default:
		return e.Message + ": " + e.Err.Error()
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors (no message) of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsCloneFailure reports whether err is a clone failure of either kind.
func IsCloneFailure(err error) bool {
	kind := KindOf(err)
	return kind == KindCloneFailed || kind == KindCloneSpawnFailed
}
