package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// RmCmd returns the rm command.
func RmCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "rm <index>",
		Short: "Delete a todo, prints the removed line",
		Long: `Delete the todo at <index> (indices as shown by list).

Every todo after the removed one shifts down by one index; run list again
before the next done or rm.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execRm(o, cfg, args)
		},
	}
}

func execRm(o *IO, cfg *Config, args []string) error {
	index, err := parseIndexArg(args)
	if err != nil {
		return err
	}

	list, loadErr := loadList(cfg)
	if loadErr != nil {
		return loadErr
	}

	removed, removeErr := list.Remove(index)
	if removeErr != nil {
		return removeErr
	}

	saveErr := saveList(cfg, list)
	if saveErr != nil {
		return saveErr
	}

	o.Println(removed.String())

	return nil
}
