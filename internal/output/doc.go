// Package output provides structured output and error handling for the
// build-my-own CLI.
//
// Every command renders through a Printer, which switches between
// human-readable output (lipgloss styles, disabled when piped) and JSON
// output for scripts and agents:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.ColorEnabled(mode, cmd.OutOrStdout()))
//	printer.Box("Project ready", summary)
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad URL, unknown editor, missing directory
//	output.ExitSystemError // 2: Clone failed, rules could not be written
//	output.ExitConflict    // 3: Project directory already exists
//
// Errors built with NewUserError and the *WithCause constructors carry
// these codes through to both the JSON error payload and the process exit
// status.
package output
