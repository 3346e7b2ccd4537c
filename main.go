package main

import (
	"fmt"
	"os"

	"github.com/cli/go-gh/v2/pkg/term"

	"github.com/gwyn/termmenu/cmd"
	"github.com/gwyn/termmenu/internal/debug"
)

func main() {
	debug.Init()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	if len(args) == 0 {
		return printUsage()
	}

	switch args[0] {
	case "run":
		return runMenu(args[1:])
	case "help", "--help", "-h":
		return printUsage()
	case "version", "--version":
		fmt.Println("termmenu version 0.1.0")
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runMenu(args []string) error {
	opts, err := cmd.ParseFlags(args)
	if err != nil {
		return err
	}

	t := term.FromEnv()
	debug.Log("runMenu", "tty_output", t.IsTerminalOutput(), "options", len(opts.Specs))

	runner := &cmd.Runner{
		In:  t.In(),
		Out: t.Out(),
	}

	return runner.Run(*opts)
}

func printUsage() error {
	usage := `termmenu - Numbered console menus

USAGE
  termmenu run [flags]

FLAGS
  -o, --option <label=message>  Add a menu option that prints message (can repeat)

ENVIRONMENT
  TERMMENU_DEBUG   Write debug logs to stderr when set

EXAMPLES
  termmenu run
  termmenu run -o "Say hi=hi" -o "Say bye=bye"
`
	fmt.Print(usage)
	return nil
}
