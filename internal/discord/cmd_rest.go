package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RestCommand returns the rest command definition and handler
func RestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rest",
		Description: "Sleep in your dormitory to restore HP and MP",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			char, err := client.Rest(user.ID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("A good night's sleep in the %s dormitory.\n❤️ HP %d/%d · ✨ MP %d/%d",
				char.House, char.Stats.HP, char.Stats.MaxHP, char.Stats.MP, char.Stats.MaxMP), nil
		}, ResponseConfig{
			Title: "🛏️ Well Rested",
			Color: colorSuccess,
		})
	}

	return cmd, handler
}
