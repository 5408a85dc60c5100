package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/WishEval_Go/internal/client"
)

var sharedCmd = &cobra.Command{
	Use:   "shared",
	Short: "Open wishes friends shared with you",
	Long: `Open a friend's share link.

Available subcommands:
  view    - Show the wish and the luck you can send
  support - Send your luck (once per wish)`,
}

var sharedViewCmd = &cobra.Command{
	Use:   "view <link>",
	Short: "Show a shared wish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wishID, text, err := client.ParseShareLink(args[0])
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			view, err := c.ViewShared(ctx, wishID, text)
			if err != nil {
				return err
			}
			headline.Printf("%q\n", view.Text)
			fmt.Println(view.Message)
			if view.AlreadySupported {
				warn.Println("You already sent luck to this wish")
			} else {
				good.Printf("You can send +%.1f%% luck\n", view.Offer)
			}
			faint.Printf("friends have sent +%.1f%% so far\n", view.FriendLuck)
			return nil
		})
	},
}

var sharedSupportCmd = &cobra.Command{
	Use:   "support <link>",
	Short: "Send luck to a shared wish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wishID, text, err := client.ParseShareLink(args[0])
		if err != nil {
			return err
		}
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res, err := c.SupportShared(ctx, wishID, text)
			if err != nil {
				return err
			}
			if res.AlreadySupported {
				warn.Println(res.Message)
			} else {
				good.Println(res.Message)
			}
			faint.Printf("friends have sent +%.1f%% so far\n", res.FriendLuck)
			return nil
		})
	},
}
