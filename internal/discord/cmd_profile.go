package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your character sheet",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		char := fetchCharacter(s, i, client, user.ID)
		if char == nil {
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s %s, %s", houseEmoji(char.House), char.Name, char.Title),
			Description: fmt.Sprintf("House %s — Level %d (%d/%d exp)",
				char.House, char.Level, char.Experience, char.ExpToNextLevel()),
			Color: houseColor(char.House),
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL(""),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "❤️ HP",
					Value:  fmt.Sprintf("%s %d/%d", vitalsBar(char.Stats.HP, char.Stats.MaxHP), char.Stats.HP, char.Stats.MaxHP),
					Inline: true,
				},
				{
					Name:   "✨ MP",
					Value:  fmt.Sprintf("%s %d/%d", vitalsBar(char.Stats.MP, char.Stats.MaxMP), char.Stats.MP, char.Stats.MaxMP),
					Inline: true,
				},
				{
					Name:   "💰 Galleons",
					Value:  fmt.Sprintf("%d", char.Galleons),
					Inline: true,
				},
				{
					Name: "Attributes",
					Value: fmt.Sprintf("STR %d · INT %d · DEX %d · CON %d · WIS %d · LCK %d",
						char.Stats.Strength, char.Stats.Intelligence, char.Stats.Dexterity,
						char.Stats.Constitution, char.Stats.Wisdom, char.Stats.Luck),
				},
				{
					Name: "🪄 Wand",
					Value: fmt.Sprintf("%s, %s, %d\"", char.Wand.Wood, char.Wand.Core, char.Wand.Length),
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: FooterGrimoireBot,
			},
		}

		if char.AttributePoints > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "📌 Unspent Points",
				Value: fmt.Sprintf("%d attribute points waiting to be assigned", char.AttributePoints),
			})
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
