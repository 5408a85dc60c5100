package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/WishEval_Go/internal/client"
	"github.com/osse101/WishEval_Go/internal/domain"
)

// maxSlotOption mirrors the API's slot bound
const maxSlotOption = 19

// WishCommand evaluates a wish, or shows the current one when no text is given
func WishCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "wish",
		Description: "Make a wish and see its chance of coming true",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Your wish (leave empty to see your current wish)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, clients ClientFactory) {
		withUserClient(s, i, clients, cmd.Name, func(c *client.Client) (*discordgo.MessageEmbed, error) {
			ctx := context.Background()

			text := ""
			if opts := getOptions(i); len(opts) > 0 {
				text = opts[0].StringValue()
			}

			var (
				resp *client.WishResponse
				err  error
			)
			if strings.TrimSpace(text) == "" {
				resp, err = c.Current(ctx)
			} else {
				resp, err = c.Evaluate(ctx, text)
			}
			if err != nil {
				return nil, err
			}
			return wishEmbed(resp), nil
		})
	}

	return cmd, handler
}

// SupportCommand presses one of the wish's support buttons
func SupportCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minSlot := 0.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "support",
		Description: "Press a support button on your wish",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "slot",
				Description: "Which button to press",
				Required:    true,
				MinValue:    &minSlot,
				MaxValue:    maxSlotOption,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, clients ClientFactory) {
		withUserClient(s, i, clients, cmd.Name, func(c *client.Client) (*discordgo.MessageEmbed, error) {
			opts := getOptions(i)
			if len(opts) == 0 {
				return nil, fmt.Errorf("missing required slot argument")
			}
			resp, err := c.Support(context.Background(), int(opts[0].IntValue()))
			if err != nil {
				return nil, err
			}
			return wishEmbed(resp), nil
		})
	}

	return cmd, handler
}

// ShareCommand returns the link friends open to send luck
func ShareCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "share",
		Description: "Get a link friends can open to send your wish luck",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, clients ClientFactory) {
		withUserClient(s, i, clients, cmd.Name, func(c *client.Client) (*discordgo.MessageEmbed, error) {
			link, err := c.Share(context.Background())
			if err != nil {
				return nil, err
			}
			description := fmt.Sprintf("%s\n\n%s", link.Message, link.URL)
			return createEmbed("🔗 Share your wish", description, ColorShare, ""), nil
		})
	}

	return cmd, handler
}

func wishEmbed(resp *client.WishResponse) *discordgo.MessageEmbed {
	if resp.Wish == nil {
		return createEmbed("🌠 Wish", resp.Message, ColorRejected, "")
	}
	w := resp.Wish

	color := ColorRejected
	if w.Evaluation.Accepted {
		color = ColorAccepted
	}

	var b strings.Builder
	fmt.Fprintf(&b, "> %s\n\n", w.Text)
	fmt.Fprintf(&b, "**%.1f%%** chance of coming true\n%s", w.Probability, resp.Message)
	if resp.Celebration != "" {
		fmt.Fprintf(&b, "\n\n🎉 %s", resp.Celebration)
	}

	embed := createEmbed("🌠 Your wish", b.String(), color, "")
	if len(w.Slots) > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{{
			Name:  "Support buttons",
			Value: formatSlots(w.Slots),
		}}
	}
	return embed
}

// formatSlots lists unused slot numbers and crosses out used ones
func formatSlots(slots []domain.SupportSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Used {
			parts = append(parts, fmt.Sprintf("~~%d~~", s.Index))
			continue
		}
		parts = append(parts, fmt.Sprintf("`%d`", s.Index))
	}
	return strings.Join(parts, " ")
}
