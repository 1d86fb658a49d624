package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// SpellsCommand returns the spellbook listing command definition and handler
func SpellsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "spells",
		Description: "Open your spellbook",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		spells, err := client.GetSpellbook(user.ID)
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(spells) == 0 {
			sendEmbed(s, i, createEmbed("📖 Your Spellbook",
				"Blank pages. Learn your first spell with `/learn`.", colorMagic, ""))
			return
		}

		var sb strings.Builder
		for _, sp := range spells {
			fmt.Fprintf(&sb, "**%s** %s (%d casts, %d MP)\n`%s` — %s\n",
				sp.Name, masteryStars(sp.Mastery), sp.TimesUsed, sp.MPCost, sp.SpellID, sp.Description)
		}

		sendEmbed(s, i, createEmbed(
			fmt.Sprintf("📖 Your Spellbook (%d spells)", len(spells)),
			sb.String(), colorMagic, ""))
	}

	return cmd, handler
}

// LearnCommand returns the spell learning command definition and handler
func LearnCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "learn",
		Description: "Study a new spell",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "spell",
				Description: "Spell ID (e.g. lumos)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			if len(options) == 0 {
				return "", fmt.Errorf("missing required spell argument")
			}

			spellID := options[0].StringValue()
			if _, err := client.LearnSpell(user.ID, spellID); err != nil {
				return "", err
			}
			return fmt.Sprintf("**%s** is now inked into your spellbook. Practice makes mastery.", spellID), nil
		}, ResponseConfig{
			Title: "📖 Spell Learned",
			Color: colorMagic,
		})
	}

	return cmd, handler
}

// CastCommand returns the spell casting command definition and handler
func CastCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "cast",
		Description: "Cast a spell you know",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "spell",
				Description: "Spell ID (see /spells)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			if len(options) == 0 {
				return "", fmt.Errorf("missing required spell argument")
			}

			result, err := client.CastSpell(user.ID, options[0].StringValue())
			if err != nil {
				return "", err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "**%s!** ✨ (-%d MP)", result.Spell.Name, result.MPSpent)
			if result.MasteryGained {
				fmt.Fprintf(&sb, "\nYour mastery grows: %s (%d/100)",
					masteryStars(result.Spell.Mastery), result.Spell.Mastery)
			}
			fmt.Fprintf(&sb, "\n✨ MP remaining: %d/%d",
				result.Character.Stats.MP, result.Character.Stats.MaxMP)
			return sb.String(), nil
		}, ResponseConfig{
			Title: "🪄 Spell Cast",
			Color: colorMagic,
		})
	}

	return cmd, handler
}
