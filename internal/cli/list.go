package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// ListCmd returns the list command.
func ListCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list",
		Short: "List todos with their indices",
		Long: `List every todo in file order.

The printed index is what done and rm accept. Indices are 0-based and only
valid until the next mutation.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execList(o, cfg)
		},
	}
}

func execList(o *IO, cfg *Config) error {
	list, err := loadList(cfg)
	if err != nil {
		return err
	}

	printListing(o, list, allIndices(list.Len()))

	return nil
}
