package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termtoys/inquire/internal/config"
	"github.com/termtoys/inquire/prompt"
)

// Command flags
var (
	confirmDefaultNo bool
	inputDefault     string
	inputPattern     string
	editTitle        string
	editFullScreen   bool
	editHeight       int
	selectMessage    string
)

func init() {
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(selectCmd)
}

// confirmCmd asks a yes/no question and reports the answer via exit code
var confirmCmd = &cobra.Command{
	Use:   "confirm <question>",
	Short: "Ask a yes/no question",
	Long: `Ask a yes/no question and exit 0 on yes, 1 on no.

The default answer (taken on an empty commit) is yes unless --no is
given or the configuration sets confirm.default_yes to false.`,
	Example: `  # Yes is the default answer
  inquire confirm "Proceed with the import?"

  # Require an explicit yes
  inquire confirm --no "Delete all entries?"`,
	Args: cobra.ExactArgs(1),
	RunE: runConfirm,
}

func init() {
	confirmCmd.Flags().BoolVar(&confirmDefaultNo, "no", false, "Make no the default answer")
}

func runConfirm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	yes := cfg.Confirm.DefaultYes && !confirmDefaultNo
	if !prompt.Confirm(args[0], yes) {
		os.Exit(1)
	}
	return nil
}

// inputCmd prompts for one validated line and prints it
var inputCmd = &cobra.Command{
	Use:   "input <message>",
	Short: "Prompt for a line of input",
	Long: `Prompt for a single line of input and print the committed value.

With --require, input is re-prompted until it contains the given
substring. An empty commit accepts the --default value.`,
	Example: `  inquire input "Your name"

  inquire input --default master "Branch to use"

  inquire input --require @ "Email address"`,
	Args: cobra.ExactArgs(1),
	RunE: runInput,
}

func init() {
	inputCmd.Flags().StringVar(&inputDefault, "default", "", "Value taken on an empty commit")
	inputCmd.Flags().StringVar(&inputPattern, "require", "", "Substring the input must contain")
}

func runInput(cmd *cobra.Command, args []string) error {
	var validate func(string) bool
	dirty := ""
	if inputPattern != "" {
		validate = func(s string) bool {
			return strings.Contains(s, inputPattern)
		}
		dirty = fmt.Sprintf("Input must contain %q", inputPattern)
	}

	value, err := prompt.Input(args[0], inputDefault, validate, dirty)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

// editCmd opens the modal editor over stdin or an empty buffer
var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit text in a modal editor",
	Long: `Open a small modal editor and print the saved buffer.

The initial buffer comes from the given file, or is empty. Ctrl+S saves
and prints the result; Ctrl+Q discards it.`,
	Example: `  # Edit a fresh note
  inquire edit --title "commit message"

  # Rework an existing file, full screen
  inquire edit --full-screen notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "inquire", "Editor title bar text")
	editCmd.Flags().BoolVar(&editFullScreen, "full-screen", false, "Use the whole terminal")
	editCmd.Flags().IntVar(&editHeight, "height", 0, "Editing area rows (0 uses the configured default)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var text string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		text = string(data)
	}

	opts := prompt.EditorOptions{
		Height:     editHeight,
		FullScreen: editFullScreen || cfg.Editor.FullScreen,
	}
	if opts.Height <= 0 {
		opts.Height = cfg.Editor.Height
	}

	edited, err := prompt.TextArea(editTitle, text, opts)
	if err != nil {
		return err
	}
	fmt.Print(edited)
	return nil
}

// selectCmd runs the range selector over its arguments
var selectCmd = &cobra.Command{
	Use:   "select <option>...",
	Short: "Select a subset of options by range expression",
	Long: `Present the arguments as a numbered list and prompt for a range
expression like "0, 2, 5-7", or "all"/"a" for every option. The chosen
options are printed one per line.`,
	Example: `  inquire select red green blue

  # Pipe-friendly: answer comes from stdin
  echo 1-2 | inquire select red green blue`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&selectMessage, "message", "Select options", "Prompt message")
}

func runSelect(cmd *cobra.Command, args []string) error {
	for _, i := range prompt.SelectRange(args, selectMessage) {
		fmt.Println(args[i])
	}
	return nil
}
