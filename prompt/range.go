package prompt

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/termtoys/inquire/internal/logging"
)

// Reserved keywords that select every available index.
const (
	KeywordAll      = "all"
	KeywordAllShort = "a"
)

// rangeDirtyMessage is shown while the typed selection does not resolve to
// any valid index.
const rangeDirtyMessage = "Range not valid, example: 0, 2, 3-10, a, all, ..."

// rangePattern matches one selection token: a run of digits optionally
// followed by a dash and a second run. Separators between tokens are not
// part of the grammar; digit runs are matched wherever they appear.
var rangePattern = regexp.MustCompile(`(\d+)-?(\d+)?`)

// ParseRange expands a range expression such as "0, 2, 5-7" into the list
// of integers it denotes, in the order tokens appear. Dash tokens expand to
// the inclusive sequence lo..hi; an inverted pair like "9-3" expands empty.
// Duplicates are preserved and the result is not sorted. Input that yields
// no tokens, or any conversion failure, produces an empty result. ParseRange
// never returns an error.
func ParseRange(expr string) []int {
	var out []int
	for _, tok := range rangePattern.FindAllStringSubmatch(expr, -1) {
		lo, err := strconv.Atoi(tok[1])
		if err != nil {
			return nil
		}
		hi := lo
		if tok[2] != "" {
			hi, err = strconv.Atoi(tok[2])
			if err != nil {
				return nil
			}
		}
		for v := lo; v <= hi; v++ {
			out = append(out, v)
		}
	}
	return out
}

// PromptFunc solicits one line of input from the user. Implementations
// block until the committed value satisfies validate, returning the default
// when the user commits an empty line, and report cancellation with
// ErrCancelled. Input is the canonical implementation.
type PromptFunc func(message, defaultValue string, validate func(string) bool, dirtyMessage string) (string, error)

// Selector presents a numbered option list and collects a range selection.
// The zero value writes to stdout and prompts via Input.
type Selector struct {
	Out    io.Writer  // option list sink; nil means os.Stdout
	Prompt PromptFunc // validated prompt primitive; nil means Input
}

// SelectRange prints every option as "<index>. <option>", then prompts for
// a range expression or one of the reserved keywords until the input
// resolves to at least one valid index. The returned indices follow parse
// order, keep duplicates, and are filtered to [0, len(options)). An empty
// option list returns nil without prompting, as does a cancelled prompt.
func (s *Selector) SelectRange(options []string, message string) []int {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	ask := s.Prompt
	if ask == nil {
		ask = Input
	}

	NewPrinter(out).Enumerate(options)

	if len(options) == 0 {
		return nil
	}

	valid := func(in string) bool {
		if in == KeywordAll || in == KeywordAllShort {
			return true
		}
		return anyInBounds(ParseRange(in), len(options))
	}

	selection, err := ask(message, "", valid, rangeDirtyMessage)
	if err != nil {
		logging.Debug("range selection cancelled", zap.Error(err))
		return nil
	}

	if selection == KeywordAll || selection == KeywordAllShort {
		selection = allIndices(len(options))
	}

	var picked []int
	for _, i := range ParseRange(selection) {
		if i >= 0 && i < len(options) {
			picked = append(picked, i)
		}
	}

	logging.Debug("range selection committed",
		zap.String("input", selection),
		zap.Int("options", len(options)),
		zap.Ints("picked", picked),
	)
	return picked
}

// SelectRange presents options on stdout and prompts interactively. See
// Selector.SelectRange.
func SelectRange(options []string, message string) []int {
	s := Selector{}
	return s.SelectRange(options, message)
}

// anyInBounds reports whether any index in vals lies within [0, n).
func anyInBounds(vals []int, n int) bool {
	for _, v := range vals {
		if v >= 0 && v < n {
			return true
		}
	}
	return false
}

// allIndices returns the comma-joined expression "0,1,...,n-1" used to
// substitute the reserved keywords before the final parse.
func allIndices(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(i)
	}
	return strings.Join(parts, ",")
}
