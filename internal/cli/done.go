package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"
)

var (
	errIndexRequired = errors.New("todo index is required")
	errInvalidIndex  = errors.New("invalid index")
)

// DoneCmd returns the done command.
func DoneCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("done", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "done <index>",
		Short: "Mark a todo as done, prints the updated line",
		Long: `Mark the todo at <index> as done (indices as shown by list).

The completion date is set to today and the priority is dropped, following
the todo.txt convention. Marking an already-done todo is an error.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execDone(o, cfg, args)
		},
	}
}

func execDone(o *IO, cfg *Config, args []string) error {
	index, err := parseIndexArg(args)
	if err != nil {
		return err
	}

	list, loadErr := loadList(cfg)
	if loadErr != nil {
		return loadErr
	}

	completeErr := list.Complete(index, time.Now())
	if completeErr != nil {
		return completeErr
	}

	saveErr := saveList(cfg, list)
	if saveErr != nil {
		return saveErr
	}

	o.Println(list.Records()[index].String())

	return nil
}

func parseIndexArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errIndexRequired
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidIndex, args[0])
	}

	return index, nil
}
