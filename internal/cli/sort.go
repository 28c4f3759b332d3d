package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// SdCmd returns the sd (sort by due date) command.
func SdCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("sd", flag.ContinueOnError)

	return &Command{
		Flags:   fs,
		Usage:   "sd",
		Aliases: []string{"closest"},
		Short:   "Show due todos, soonest first",
		Long: `Show incomplete todos carrying a valid due: tag, soonest due first.
Equal due dates keep file order. Todos without a due tag and completed todos
are omitted.

Display-only: the file order is never changed.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			list, err := loadList(cfg)
			if err != nil {
				return err
			}

			printListing(o, list, list.SortByDue())

			return nil
		},
	}
}

// SpCmd returns the sp (sort by priority) command.
func SpCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("sp", flag.ContinueOnError)

	return &Command{
		Flags:   fs,
		Usage:   "sp",
		Aliases: []string{"important"},
		Short:   "Show prioritized todos, A first",
		Long: `Show incomplete todos carrying a (A)-(Z) priority, highest first.
Equal priorities keep file order. Todos without a priority and completed
todos are omitted.

Display-only: the file order is never changed.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			list, err := loadList(cfg)
			if err != nil {
				return err
			}

			printListing(o, list, list.SortByPriority())

			return nil
		},
	}
}
