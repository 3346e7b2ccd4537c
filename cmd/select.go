package cmd

import (
	"fmt"
	"strings"

	"github.com/gwyn/termmenu/internal/debug"
)

// Entry is a menu option that prints Message when selected.
type Entry struct {
	Label   string
	Message string
}

// DefaultEntries is the menu shown when no options are given.
func DefaultEntries() []Entry {
	return []Entry{
		{Label: "Say hi", Message: "hi"},
		{Label: "Say bye", Message: "bye"},
	}
}

// ParseOptionSpec parses a "label=message" pair. The label ends at the first
// "=", so messages may contain "=" and labels may be empty.
func ParseOptionSpec(s string) (Entry, error) {
	label, message, ok := strings.Cut(s, "=")
	if !ok {
		err := fmt.Errorf("invalid option %q (expected label=message)", s)
		debug.Error("ParseOptionSpec", err)
		return Entry{}, err
	}
	return Entry{Label: label, Message: message}, nil
}

// ParseOptionSpecs parses each spec in order.
func ParseOptionSpecs(specs []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(specs))
	for _, s := range specs {
		e, err := ParseOptionSpec(s)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
