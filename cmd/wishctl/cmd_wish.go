package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/WishEval_Go/internal/client"
)

var copyToClipboard bool

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <wish...>",
	Short: "Evaluate a wish",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			faint.Println("Evaluating your wish...")
			resp, err := c.Evaluate(ctx, text)
			if err != nil {
				return err
			}
			printWish(resp)
			return nil
		})
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current wish",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			resp, err := c.Current(ctx)
			if err != nil {
				return err
			}
			printWish(resp)
			return nil
		})
	},
}

var supportCmd = &cobra.Command{
	Use:   "support <slot>",
	Short: "Press one of the wish's support buttons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("slot must be a number: %w", err)
		}
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			resp, err := c.Support(ctx, slot)
			if err != nil {
				return err
			}
			printWish(resp)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the current wish",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			msg, err := c.Reset(ctx)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		})
	},
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Get a link friends can open to send luck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			link, err := c.Share(ctx)
			if err != nil {
				return err
			}
			copyLink(link.URL, copyToClipboard)
			return nil
		})
	},
}

var luckCmd = &cobra.Command{
	Use:   "luck [wish-id]",
	Short: "Show how much luck friends have sent",
	Long:  "Show the luck friends have sent to a wish. Defaults to the current wish.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			wishID := ""
			if len(args) == 1 {
				wishID = args[0]
			} else {
				resp, err := c.Current(ctx)
				if err != nil {
					return err
				}
				wishID = resp.Wish.ID
			}
			luck, err := c.FriendLuck(ctx, wishID)
			if err != nil {
				return err
			}
			good.Printf("Friends have sent +%.1f%% luck\n", luck)
			return nil
		})
	},
}

func init() {
	shareCmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the link to the clipboard")
}
