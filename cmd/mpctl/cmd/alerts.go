package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage per-user price alerts. An alert tracks one marketplace item\n" +
			"and fires a Discord DM whenever its price changes from the last\n" +
			"observed baseline.",
	}

	alertsRoot.AddCommand(
		alertListCmd(),
		alertAddCmd(),
		alertRemoveCmd(),
	)

	return alertsRoot
}

func alertListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your alerts",
		Example: `  mpctl alerts list --guild 123 --user 456
  mpctl alerts list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			guildID, userID, err := guildAndUser()
			if err != nil {
				return err
			}

			c := newClient()
			alerts, err := c.ListAlerts(context.Background(), guildID, userID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertTable(alerts)
		},
	}
}

func alertAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <item-id-or-name>",
		Short: "Add a price alert",
		Long: "Add a price alert for a marketplace item, given either its numeric\n" +
			"ID or its name. Adding an alert that already exists resets its\n" +
			"baseline to the item's current price.",
		Example: `  mpctl alerts add 42 --guild 123 --user 456
  mpctl alerts add "Black Ice" --guild 123 --user 456`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			guildID, userID, err := guildAndUser()
			if err != nil {
				return err
			}

			c := newClient()
			alert, err := c.CreateAlert(context.Background(), guildID, userID, args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alert)
			}

			baseline := "not yet listed"
			if alert.LastPrice != nil {
				baseline = fmt.Sprintf("%d coins", *alert.LastPrice)
			}
			fmt.Printf("Alert created for item %s (current price: %s)\n", alert.ItemID, baseline)
			return nil
		},
	}
}

func alertRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <item-id>",
		Short:   "Remove a price alert",
		Example: `  mpctl alerts remove 42 --guild 123 --user 456`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			guildID, userID, err := guildAndUser()
			if err != nil {
				return err
			}

			c := newClient()
			if err := c.DeleteAlert(context.Background(), guildID, userID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Alert for item %s removed.\n", args[0])
			return nil
		},
	}
}
