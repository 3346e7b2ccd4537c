package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gwyn/termmenu/internal/debug"
)

// Options contains the parsed command line options for the run command.
type Options struct {
	Specs []string
}

// stringSlice is a flag.Value that collects multiple string values.
type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// ParseFlags parses command line arguments for the run command.
func ParseFlags(args []string) (*Options, error) {
	debug.Log("ParseFlags", "args", args)

	fs := flag.NewFlagSet("run", flag.ContinueOnError)

	var specs stringSlice
	fs.Var(&specs, "option", "Menu option as label=message (can be repeated)")
	fs.Var(&specs, "o", "Menu option as label=message (can be repeated)")

	if err := fs.Parse(args); err != nil {
		debug.Error("ParseFlags", err, "stage", "fs.Parse")
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	opts := &Options{Specs: specs}
	if _, err := ParseOptionSpecs(opts.Specs); err != nil {
		return nil, err
	}

	debug.Log("ParseFlags", "parsed", fmt.Sprintf("%+v", opts))
	return opts, nil
}

// Runner executes the run subcommand.
type Runner struct {
	In  io.Reader
	Out io.Writer

	// NewPrompter builds the menu. Defaults to NewMenuPrompter.
	NewPrompter func(in io.Reader, out io.Writer) Prompter
}

// Run builds the menu from opts and blocks until the user quits.
func (r *Runner) Run(opts Options) error {
	if r.Out == nil {
		return errors.New("output is nil")
	}

	entries, err := ParseOptionSpecs(opts.Specs)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		entries = DefaultEntries()
	}

	newPrompter := r.NewPrompter
	if newPrompter == nil {
		newPrompter = NewMenuPrompter
	}
	p := newPrompter(r.In, r.Out)

	for _, e := range entries {
		p.AddOption(e.Label, func() {
			fmt.Fprintln(r.Out, e.Message)
		})
	}

	debug.Log("Runner.Run", "entries", len(entries))
	p.Run()
	return nil
}
