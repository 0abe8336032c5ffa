// Package prompt provides interactive terminal prompting primitives for
// CLI applications: validated free-text input, yes/no confirmation, a
// modal text editor, a yes/no dialog, and a numeric range selector.
//
// All interactive primitives are built on Bubble Tea models and fall back
// to plain line-based reading when stdin is not a terminal, so they stay
// usable in pipes and scripts.
//
// # Range selection
//
// The range selector presents a numbered option list and accepts
// expressions like "0, 2, 5-7" or the reserved keywords "all"/"a":
//
//	picked := prompt.SelectRange(options, "Select entries")
//
// ParseRange implements the expression grammar on its own and can be used
// without any terminal interaction:
//
//	prompt.ParseRange("2-4")   // [2 3 4]
//	prompt.ParseRange("9-3")   // [] (inverted ranges expand empty)
//
// # Validated input
//
// Input blocks until the user commits a value accepted by the supplied
// validator, re-prompting with a guidance message on invalid input:
//
//	name, err := prompt.Input("Library name", "default", func(s string) bool {
//	    return !strings.ContainsRune(s, ' ')
//	}, "Names must not contain spaces")
//
// Cancellation (Ctrl+C, Esc, or EOF on a pipe) is reported as
// ErrCancelled.
//
// # Logging
//
// This package logs through internal/logging, which is silent unless the
// INQUIRE_LOG_LEVEL environment variable is set. This keeps curated
// terminal output clean by default.
package prompt
