package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"github.com/osse101/WishEval_Go/internal/client"
	"github.com/osse101/WishEval_Go/internal/domain"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var (
	headline = color.New(color.FgCyan, color.Bold)
	good     = color.New(color.FgGreen)
	warn     = color.New(color.FgYellow)
	bad      = color.New(color.FgRed)
	faint    = color.New(color.Faint)
)

func printWish(resp *client.WishResponse) {
	if resp.Wish == nil {
		warn.Println(resp.Message)
		return
	}
	w := resp.Wish

	headline.Printf("%q\n", w.Text)
	if w.Evaluation.Accepted {
		good.Printf("%.1f%% chance of coming true\n", w.Probability)
	} else {
		warn.Printf("%.1f%%\n", w.Probability)
	}
	fmt.Println(resp.Message)
	if resp.Celebration != "" {
		good.Add(color.Bold).Println(resp.Celebration)
	}

	if len(w.Slots) > 0 {
		fmt.Println(formatSlots(w.Slots))
	}
	faint.Printf("wish %s (%s)\n", w.ID, w.Variant)
}

// formatSlots renders support buttons as [0] [1] [x] with used ones crossed out.
func formatSlots(slots []domain.SupportSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Used {
			parts = append(parts, "[x]")
			continue
		}
		parts = append(parts, fmt.Sprintf("[%d]", s.Index))
	}
	return "support: " + strings.Join(parts, " ")
}

// copyLink copies the share link, falling back to printing it when no
// clipboard is available.
func copyLink(link string, tryClipboard bool) {
	if tryClipboard && clipboardWriteAll(link) == nil {
		good.Println("Link copied to clipboard")
		fmt.Println(link)
		return
	}
	fmt.Println("Link ready to share")
	fmt.Println(link)
}

func printError(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		warn.Fprintln(os.Stderr, apiErr.Message)
		return
	}
	bad.Fprintln(os.Stderr, err)
}
