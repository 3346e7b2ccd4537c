package cmd

import (
	"io"

	"github.com/gwyn/termmenu/menu"
)

// Prompter runs an interactive numbered menu.
type Prompter interface {
	AddOption(label string, action menu.Action)
	Run()
}

// NewMenuPrompter returns a menu.Menu reading from in and writing to out.
func NewMenuPrompter(in io.Reader, out io.Writer) Prompter {
	return &menu.Menu{In: in, Out: out}
}

// Compile-time check: menu.Menu must implement Prompter
var _ Prompter = (*menu.Menu)(nil)
