// Package project bootstraps "build my own X" learning projects.
//
// A bootstrap derives a project name from a repository URL, creates
//
//	<base>/<name>/
//	  <name>-original/   clone of the repository
//	  <name>-my-own/     empty workspace for the reimplementation
//	  <rules file>       teaching rules for the selected editor
//
// and optionally opens the editor on the project. Bootstrap is not
// idempotent: an existing project directory is never merged into.
// InstallRules rewrites the rules file of an existing project, and
// ListProjects finds bootstrapped projects under a base directory.
//
// Failures are *Error values carrying a Kind:
//
//	res, err := project.New().Bootstrap(ctx, project.Request{URL: url, BasePath: base})
//	if errors.Is(err, project.ErrDirectoryExists) { ... }
package project
