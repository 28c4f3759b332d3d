package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

// ShellCmd returns the interactive shell command.
func ShellCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "shell",
		Short: "Interactive command loop",
		Long: `Read commands interactively (list, add, done, rm, sd, sp) with line
editing and history. Each command runs a fresh load/mutate/save cycle,
exactly like a one-shot invocation. quit, exit or Ctrl-D leaves the shell.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execShell(ctx, o, cfg)
		},
	}
}

func execShell(ctx context.Context, o *IO, cfg *Config) error {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("td> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		if name == "quit" || name == "exit" {
			return nil
		}

		cmd := lookupCommand(baseCommands(cfg), name)
		if cmd == nil {
			o.ErrPrintln("error: unknown command:", name)

			continue
		}

		line.AppendHistory(input)

		// Exit codes are per command here; the loop itself keeps going.
		cmd.Run(ctx, o, fields[1:])
	}
}
