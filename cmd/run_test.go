package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwyn/termmenu/menu"
)

// mockPrompter records options and runs the scripted selections on Run.
type mockPrompter struct {
	labels  []string
	actions []menu.Action
	pick    []int
	ran     int
}

func (m *mockPrompter) AddOption(label string, action menu.Action) {
	m.labels = append(m.labels, label)
	m.actions = append(m.actions, action)
}

func (m *mockPrompter) Run() {
	m.ran++
	for _, i := range m.pick {
		m.actions[i]()
	}
}

// Compile-time check: mockPrompter must implement Prompter
var _ Prompter = (*mockPrompter)(nil)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr bool
	}{
		{
			name: "long and short flags",
			args: []string{"--option", "Say hi=hi", "-o", "Say bye=bye"},
			want: Options{Specs: []string{"Say hi=hi", "Say bye=bye"}},
		},
		{
			name: "no flags",
			args: []string{},
			want: Options{},
		},
		{
			name:    "malformed option",
			args:    []string{"-o", "no separator"},
			wantErr: true,
		},
		{
			name:    "positional argument",
			args:    []string{"extra"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"--title", "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Specs, got.Specs)
		})
	}
}

func TestParseOptionSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Entry
		wantErr bool
	}{
		{name: "simple", spec: "Say hi=hi", want: Entry{Label: "Say hi", Message: "hi"}},
		{name: "message with equals", spec: "Math=1+1=2", want: Entry{Label: "Math", Message: "1+1=2"}},
		{name: "empty label", spec: "=quiet", want: Entry{Label: "", Message: "quiet"}},
		{name: "empty message", spec: "Blank=", want: Entry{Label: "Blank", Message: ""}},
		{name: "missing separator", spec: "Say hi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptionSpec(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunnerRun(t *testing.T) {
	tests := []struct {
		name       string
		specs      []string
		pick       []int
		wantLabels []string
		wantOut    string
	}{
		{
			name:       "defaults",
			pick:       []int{0, 1},
			wantLabels: []string{"Say hi", "Say bye"},
			wantOut:    "hi\nbye\n",
		},
		{
			name:       "custom options",
			specs:      []string{"One=1", "Two=2", "One=uno"},
			pick:       []int{2, 0, 2},
			wantLabels: []string{"One", "Two", "One"},
			wantOut:    "uno\n1\nuno\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &mockPrompter{pick: tt.pick}
			r := &Runner{
				Out:         &out,
				NewPrompter: func(io.Reader, io.Writer) Prompter { return p },
			}

			require.NoError(t, r.Run(Options{Specs: tt.specs}))
			assert.Equal(t, tt.wantLabels, p.labels)
			assert.Equal(t, 1, p.ran)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestRunnerRunErrors(t *testing.T) {
	r := &Runner{Out: io.Discard}
	assert.Error(t, r.Run(Options{Specs: []string{"bad"}}))

	r = &Runner{}
	assert.Error(t, r.Run(Options{}))
}

func TestRunnerRunWithMenu(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		In:  strings.NewReader("1\n2\n5\nabc\nq\n"),
		Out: &out,
	}

	require.NoError(t, r.Run(Options{}))

	const prompt = "Type the number of your selection (Type q to exit): "
	want := "Choose an option:\n1: Say hi\n2: Say bye\n" +
		prompt + "hi\n" +
		prompt + "bye\n" +
		prompt + "Invalid selection.\n" +
		prompt + "Please enter an integer.\n" +
		prompt + "Ending.\n"
	assert.Equal(t, want, out.String())
}
