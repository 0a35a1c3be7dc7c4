package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <item-id-or-name>",
		Short: "Resolve an item ID or name to a marketplace item",
		Example: `  mpctl resolve 42
  mpctl resolve "Black Ice"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			c := newClient()
			item, err := c.ResolveItem(context.Background(), query)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(item)
			}
			return printItemDetail(item)
		},
	}
}
