package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	minArgs     = 2
	consumedOne = 1
	consumedTwo = 2
	helpFlag    = "--help"
)

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
)

// Run is the main entry point. Returns exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) < minArgs {
		printUsage(out, commandSet(&Config{}))

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Default workDir to current directory
	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	// Resolve the todo file: --file beats TODO_FILE beats the default.
	filePath := flags.filePath
	if filePath == "" {
		filePath = env["TODO_FILE"]
	}

	if filePath == "" {
		filePath = DefaultFileName
	}

	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(workDir, filePath)
	}

	cfg := &Config{FilePath: filePath}
	commands := commandSet(cfg)

	if len(flags.remaining) == 0 {
		printUsage(out, commands)

		return 0
	}

	name := flags.remaining[0]
	if name == "-h" || name == helpFlag {
		printUsage(out, commands)

		return 0
	}

	cmd := lookupCommand(commands, name)
	if cmd == nil {
		fprintln(errOut, "error: unknown command:", name)
		printUsage(errOut, commands)

		return 1
	}

	ioCtx := NewIO(out, errOut)

	return cmd.Run(context.Background(), ioCtx, flags.remaining[1:])
}

// baseCommands returns the one-shot commands, in help order.
func baseCommands(cfg *Config) []*Command {
	return []*Command{
		ListCmd(cfg),
		AddCmd(cfg),
		DoneCmd(cfg),
		RmCmd(cfg),
		SdCmd(cfg),
		SpCmd(cfg),
	}
}

func commandSet(cfg *Config) []*Command {
	return append(baseCommands(cfg), ShellCmd(cfg))
}

func lookupCommand(commands []*Command, name string) *Command {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd
		}

		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd
			}
		}
	}

	return nil
}

type globalFlags struct {
	workDir   string
	filePath  string
	remaining []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if arg == "-C" || arg == "--cwd" {
		if idx+1 >= len(args) {
			return 0, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -f/--file flag (todo file)
	if arg == "-f" || arg == "--file" {
		if idx+1 >= len(args) {
			return 0, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.filePath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--file="); ok {
		flags.filePath = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return 0, fmt.Errorf("%w: %s", errUnknownFlag, arg)
	}

	// Not a flag
	return 0, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(writer io.Writer, commands []*Command) {
	fprintln(writer, `td - todo.txt manager

Usage: td [options] <command> [args]

Options:
  -C, --cwd <dir>      Run as if started in <dir>
  -f, --file <path>    Todo file to operate on [default: todo.txt, env: TODO_FILE]

Commands:`)

	for _, cmd := range commands {
		fprintln(writer, cmd.HelpLine())
	}
}
