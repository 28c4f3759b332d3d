package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"td/internal/todo"

	flag "github.com/spf13/pflag"
)

var errTextRequired = errors.New("todo text is required")

// AddCmd returns the add command.
func AddCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "add <text>",
		Short: "Add a todo, prints its index",
		Long: `Add a todo to the end of the file. Prints the new index on success.

The text may carry a (A) priority, a leading creation date, @contexts,
+projects and key:value tags such as due:2025-02-01. A creation date is
stamped automatically when absent.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execAdd(o, cfg, args)
		},
	}
}

func execAdd(o *IO, cfg *Config, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return errTextRequired
	}

	rec, err := todo.NewActive(text, time.Now())
	if err != nil {
		return err
	}

	list, loadErr := loadList(cfg)
	if loadErr != nil {
		return loadErr
	}

	list.Add(rec)

	saveErr := saveList(cfg, list)
	if saveErr != nil {
		return saveErr
	}

	o.Println(list.Len() - 1)

	return nil
}
