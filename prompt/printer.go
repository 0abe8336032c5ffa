package prompt

import (
	"fmt"
	"io"
	"os"
)

// Printer writes prompt chrome to an output sink. It exists so the
// enumeration side effects of the selector can be redirected and tested.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer that writes to w. If w is nil, os.Stdout
// is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// Enumerate prints every option as "<index>. <option>", one per line.
func (p *Printer) Enumerate(options []string) {
	for i, option := range options {
		_, _ = fmt.Fprintf(p.out, "%d. %s\n", i, option)
	}
}
