package config

// Config represents the entire user configuration file.
// It stores presentation preferences for the prompting primitives. The
// reserved selector keywords ("all"/"a") are compile-time constants in
// the prompt package and intentionally not configurable here.
type Config struct {
	Version int           `yaml:"version"`
	Editor  *EditorPrefs  `yaml:"editor,omitempty"`
	Confirm *ConfirmPrefs `yaml:"confirm,omitempty"`
}

// EditorPrefs configures the modal text editor.
type EditorPrefs struct {
	Height     int  `yaml:"height"`      // Editing area rows
	FullScreen bool `yaml:"full_screen"` // Take over the terminal while editing
}

// ConfirmPrefs configures yes/no confirmation prompts.
type ConfirmPrefs struct {
	DefaultYes bool `yaml:"default_yes"` // Empty answer means yes
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: 1,
		Editor: &EditorPrefs{
			Height:     10,
			FullScreen: false,
		},
		Confirm: &ConfirmPrefs{
			DefaultYes: true,
		},
	}
}

// normalize fills in any sections missing from a loaded file so callers
// never see nil preference structs.
func (c *Config) normalize() {
	defaults := New()
	if c.Editor == nil {
		c.Editor = defaults.Editor
	}
	if c.Editor.Height <= 0 {
		c.Editor.Height = defaults.Editor.Height
	}
	if c.Confirm == nil {
		c.Confirm = defaults.Confirm
	}
}
