package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		return []*discordgo.ApplicationCommand{
			{
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
			},
			{
				Name:        "rest",
				Description: "Sleep in your dormitory to restore HP and MP",
			},
		}
	}

	t.Run("identical sets are equal", func(t *testing.T) {
		assert.True(t, commandsEqual(base(), base()))
	})

	t.Run("different length is unequal", func(t *testing.T) {
		assert.False(t, commandsEqual(base(), base()[:1]))
	})

	t.Run("changed description is unequal", func(t *testing.T) {
		changed := base()
		changed[1].Description = "Take a nap"
		assert.False(t, commandsEqual(base(), changed))
	})

	t.Run("changed option requiredness is unequal", func(t *testing.T) {
		changed := base()
		changed[0].Options[0].Required = false
		assert.False(t, commandsEqual(base(), changed))
	})

	t.Run("order does not matter", func(t *testing.T) {
		reordered := base()
		reordered[0], reordered[1] = reordered[1], reordered[0]
		assert.True(t, commandsEqual(base(), reordered))
	})
}

func TestOptionEqualChoices(t *testing.T) {
	a := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "house",
		Description: "Limit to one house",
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Gryffindor", Value: "Gryffindor"},
		},
	}
	b := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "house",
		Description: "Limit to one house",
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Slytherin", Value: "Slytherin"},
		},
	}

	assert.True(t, optionEqual(a, a))
	assert.False(t, optionEqual(a, b))
}

func TestRegistryComponentRouting(t *testing.T) {
	ctx := SetupTestContext(t)
	registry := NewCommandRegistry()

	var routed string
	registry.RegisterComponent("sorting", func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		routed = "sorting"
	})
	registry.RegisterComponent("sorting_cancel", func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		routed = "sorting_cancel"
	})

	interaction := func(customID string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Type: discordgo.InteractionMessageComponent,
				Data: discordgo.MessageComponentInteractionData{
					CustomID: customID,
				},
			},
		}
	}

	registry.HandleComponent(ctx.Session, interaction("sorting:2:Harry"), ctx.APIClient)
	assert.Equal(t, "sorting", routed)

	registry.HandleComponent(ctx.Session, interaction("sorting_cancel:Harry"), ctx.APIClient)
	assert.Equal(t, "sorting_cancel", routed)

	routed = ""
	registry.HandleComponent(ctx.Session, interaction("unknown:x"), ctx.APIClient)
	assert.Empty(t, routed)
}
