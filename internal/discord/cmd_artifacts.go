package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// ArtifactsCommand returns the artifact listing command definition and handler
func ArtifactsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "artifacts",
		Description: "See the legendary artifacts and who holds them",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		artifacts, err := client.GetArtifacts()
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		for _, a := range artifacts {
			fmt.Fprintf(&sb, "%s **%s** — %s\n`%s`\n",
				artifactStatusEmoji(a.Status), a.Name, artifactStatusLine(a), a.ItemID)
		}
		if sb.Len() == 0 {
			sb.WriteString("The legends are silent. No artifacts exist yet.")
		}

		sendEmbed(s, i, createEmbed("🏺 Legendary Artifacts", sb.String(), colorMagic, ""))
	}

	return cmd, handler
}

// ClaimCommand returns the artifact claim command definition and handler
func ClaimCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "claim",
		Description: "Attempt to claim an unclaimed artifact",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "artifact",
				Description: "Artifact item ID (see /artifacts)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			if len(options) == 0 {
				return "", fmt.Errorf("missing required artifact argument")
			}

			artifact, err := client.ClaimArtifact(user.ID, options[0].StringValue())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("**%s** is yours!\nGuard it well; artifacts attract attention.", artifact.Name), nil
		}, ResponseConfig{
			Title: "🏺 Artifact Claimed",
			Color: colorSuccess,
		})
	}

	return cmd, handler
}

func artifactStatusEmoji(status domain.WorldItemStatus) string {
	switch status {
	case domain.WorldItemOwned:
		return "👑"
	case domain.WorldItemLost:
		return "🌫️"
	case domain.WorldItemHidden:
		return "🕯️"
	case domain.WorldItemBossDrop:
		return "⚔️"
	default:
		return "✨"
	}
}

func artifactStatusLine(a domain.WorldItem) string {
	switch a.Status {
	case domain.WorldItemOwned:
		// CurrentOwner is the internal character ID, not a Discord mention
		return "claimed by another wizard"
	case domain.WorldItemLost:
		return "lost to the world"
	case domain.WorldItemHidden:
		return "hidden somewhere in the castle"
	case domain.WorldItemBossDrop:
		return "guarded by something terrible"
	default:
		return "unclaimed"
	}
}
