package project

import (
	"strings"
)

// Name identifies a project; it is derived from the repository URL.
type Name string

const gitSuffix = ".git"

// Resolve derives the project name from the last path segment of url,
// which must end in ".git".
func Resolve(url string) (Name, error) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return "", newError(KindInvalidURL, "invalid GitHub URL: empty", nil)
	}

	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "", newError(KindInvalidURL, "invalid GitHub URL "+quote(trimmed)+": trailing slash", nil)
	}
	if !strings.HasSuffix(last, gitSuffix) {
		return "", newError(KindInvalidURL, "invalid GitHub URL "+quote(trimmed)+": must end with .git", nil)
	}

	name := strings.TrimSuffix(last, gitSuffix)
	if name == "" || name == "." || name == ".." {
		return "", newError(KindInvalidURL, "invalid GitHub URL "+quote(trimmed)+": no project name before .git", nil)
	}
	return Name(name), nil
}

// ValidateURL applies the same rule as Resolve without returning the name.
func ValidateURL(url string) error {
	_, err := Resolve(url)
	return err
}

func quote(s string) string {
	return `"` + s + `"`
}
