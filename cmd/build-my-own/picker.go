package main

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/output"
)

// editorOptions lists detected editors first, then the rest of the registry.
func editorOptions(detected []editor.Kind) []huh.Option[string] {
	found := make(map[editor.Kind]bool, len(detected))
	for _, kind := range detected {
		found[kind] = true
	}

	opts := make([]huh.Option[string], 0, len(editor.All()))
	var rest []huh.Option[string]
	for _, cfg := range editor.All() {
		if found[cfg.Kind] {
			opts = append(opts, huh.NewOption(cfg.DisplayName+" (installed)", string(cfg.Kind)))
			continue
		}
		rest = append(rest, huh.NewOption(cfg.DisplayName, string(cfg.Kind)))
	}
	return append(opts, rest...)
}

// pickEditor asks the user to choose an editor.
func pickEditor(detected []editor.Kind) (editor.Kind, error) {
	choice := string(editor.Preferred(detected))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(editorOptions(detected)...).
				Value(&choice),
		).
			Title("Editor").
			Description("Teaching rules are installed for the editor you pick."),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", output.NewUserError("editor selection cancelled")
		}
		return "", output.NewSystemErrorWithCause("editor selection failed: "+err.Error(), err)
	}
	return editor.Kind(choice), nil
}
