package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	houseChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Houses))
	for _, h := range domain.Houses {
		houseChoices = append(houseChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(h),
			Value: string(h),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "See the most accomplished wizards",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "house",
				Description: "Limit to one house",
				Required:    false,
				Choices:     houseChoices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		house := ""
		if options := getOptions(i); len(options) > 0 {
			house = options[0].StringValue()
		}

		chars, err := client.GetLeaderboard(house, 0)
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(chars) == 0 {
			sendEmbed(s, i, createEmbed("🏆 Leaderboard",
				"Nobody has been sorted yet. Be the first with `/sorting`.", colorInfo, ""))
			return
		}

		medals := [3]string{"🥇", "🥈", "🥉"}
		var sb strings.Builder
		for idx, char := range chars {
			rank := fmt.Sprintf("%d.", idx+1)
			if idx < len(medals) {
				rank = medals[idx]
			}
			fmt.Fprintf(&sb, "%s %s **%s** — Level %d, %d exp\n",
				rank, houseEmoji(char.House), char.Name, char.Level, char.TotalExperience)
		}

		title := "🏆 Leaderboard"
		color := colorWarning
		if house != "" {
			if h, ok := domain.ParseHouse(house); ok {
				title = fmt.Sprintf("🏆 %s %s Leaderboard", houseEmoji(h), h)
				color = houseColor(h)
			}
		}

		sendEmbed(s, i, createEmbed(title, sb.String(), color, ""))
	}

	return cmd, handler
}
