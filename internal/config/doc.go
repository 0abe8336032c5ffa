// Package config provides user configuration for the inquire toolkit.
//
// This package manages a YAML-based configuration file holding
// presentation preferences for the prompting primitives: editor height,
// full-screen mode, and the confirm default. The file location follows
// OS conventions:
//   - Linux: $XDG_CONFIG_HOME/inquire/config.yaml or $HOME/.config/inquire/config.yaml
//   - macOS: $HOME/.config/inquire/config.yaml
//   - Windows: %LOCALAPPDATA%\inquire\config.yaml
//
// The reserved range-selector keywords are deliberately not part of the
// configuration; they are constants in the prompt package.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := prompt.TextArea("notes", body, prompt.EditorOptions{
//	    Height:     cfg.Editor.Height,
//	    FullScreen: cfg.Editor.FullScreen,
//	})
//
// Saving is atomic (write to a temp file, then rename) so a crash cannot
// leave a half-written file behind.
package config
