package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/marketping/marketping/internal/api/client"
	domain "github.com/marketping/marketping/pkg/types"
)

func searchCmd() *cobra.Command {
	var (
		searchWeapon   string
		searchEvent    string
		searchType     string
		searchMinPrice int64
		searchMaxPrice int64
		searchLimit    int
	)

	cmd := &cobra.Command{
		Use:   "search [name]",
		Short: "Search marketplace items",
		Example: `  mpctl search "black ice"
  mpctl search --weapon R4-C --max-price 5000
  mpctl search --event "Glacier" --type skin --limit 5`,
		RunE: func(_ *cobra.Command, args []string) error {
			params := &apiclient.SearchParams{
				Weapon: searchWeapon,
				Event:  searchEvent,
				Type:   searchType,
				Limit:  searchLimit,
			}
			if len(args) > 0 {
				params.Name = args[0]
			}
			if searchMinPrice > 0 {
				params.MinPrice = domain.Int64(searchMinPrice)
			}
			if searchMaxPrice > 0 {
				params.MaxPrice = domain.Int64(searchMaxPrice)
			}

			c := newClient()
			items, err := c.SearchItems(context.Background(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("No items found.")
				return nil
			}
			return printItemTable(items)
		},
	}

	cmd.Flags().StringVar(&searchWeapon, "weapon", "", "filter by weapon")
	cmd.Flags().StringVar(&searchEvent, "event", "", "filter by event")
	cmd.Flags().StringVar(&searchType, "type", "", "filter by item type")
	cmd.Flags().Int64Var(&searchMinPrice, "min-price", 0, "minimum price in coins")
	cmd.Flags().Int64Var(&searchMaxPrice, "max-price", 0, "maximum price in coins")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results")

	return cmd
}
