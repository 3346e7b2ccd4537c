package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gwyn/termmenu/internal/debug"
)

const (
	header    = "Choose an option:"
	prompt    = "Type the number of your selection (Type q to exit): "
	farewell  = "Ending."
	quitLower = "q"
	quitUpper = "Q"
)

// Action is invoked when its option is selected.
type Action func()

// Option is a single numbered menu entry.
type Option struct {
	label  string
	action Action
}

// Label returns the text displayed for the option.
func (o Option) Label() string {
	return o.label
}

// Menu is an ordered list of options. The zero value is an empty menu that
// reads from os.Stdin and writes to os.Stdout.
type Menu struct {
	// In is read one line per prompt. It must be set before the first Run.
	In io.Reader

	// Out receives the menu, prompts and messages.
	Out io.Writer

	options []Option
	reader  *bufio.Reader
}

// AddOption appends an option. Options are numbered from 1 in the order they
// are added. Empty and duplicate labels are allowed.
func (m *Menu) AddOption(label string, action Action) {
	if action == nil {
		action = func() {}
	}
	m.options = append(m.options, Option{label: label, action: action})
}

// Len returns the number of options.
func (m *Menu) Len() int {
	return len(m.options)
}

// Labels returns the option labels in display order.
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.options))
	for i, opt := range m.options {
		labels[i] = opt.label
	}
	return labels
}

// Run prints the menu and prompts until the user enters q or Q. A valid
// number runs the matching action before prompting again. Invalid input,
// including a failed read, is reported and the prompt repeats.
func (m *Menu) Run() {
	out := m.output()
	debug.Log("Menu.Run", "options", len(m.options))

	fmt.Fprintln(out, header)
	for i, opt := range m.options {
		fmt.Fprintf(out, "%d: %s\n", i+1, opt.label)
	}

	for {
		fmt.Fprint(out, prompt)

		sel := m.next()
		switch sel.kind {
		case selectInvoke:
			opt := m.options[sel.index]
			debug.Log("Menu.Run", "selected_index", sel.index+1, "label", opt.label)
			opt.action()
		case selectQuit:
			debug.Log("Menu.Run", "action", "quit")
			fmt.Fprintln(out, farewell)
			return
		case selectRejected:
			debug.Error("Menu.Run", sel.err, "input", sel.input)
			fmt.Fprintln(out, sel.err.Error())
		}
	}
}

type selectionKind int

const (
	selectInvoke selectionKind = iota
	selectQuit
	selectRejected
)

// selection is the outcome of one prompt.
type selection struct {
	kind  selectionKind
	index int // zero-based, selectInvoke only
	input string
	err   *InputError
}

func (m *Menu) next() selection {
	line, err := m.readLine()
	if err != nil {
		inputErr := newInputError(ReadFailure, "")
		inputErr.Err = err
		return selection{kind: selectRejected, err: inputErr}
	}
	return parseSelection(line, len(m.options))
}

// parseSelection checks for an integer before the quit token, so a line is
// never both.
func parseSelection(line string, count int) selection {
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > count {
			return selection{kind: selectRejected, input: line, err: newInputError(OutOfRange, line)}
		}
		return selection{kind: selectInvoke, index: n - 1, input: line}
	}
	if line == quitLower || line == quitUpper {
		return selection{kind: selectQuit, input: line}
	}
	return selection{kind: selectRejected, input: line, err: newInputError(NotAnInteger, line)}
}

// readLine returns the next line without its line terminator. An unterminated
// final line is returned as is; only an empty read at end of input fails.
func (m *Menu) readLine() (string, error) {
	line, err := m.lineReader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		line = strings.TrimSuffix(trimmed, "\r")
	}
	return line, nil
}

func (m *Menu) lineReader() *bufio.Reader {
	if m.reader == nil {
		in := m.In
		if in == nil {
			in = os.Stdin
		}
		m.reader = bufio.NewReader(in)
	}
	return m.reader
}

func (m *Menu) output() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}
