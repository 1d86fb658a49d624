package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Look inside your trunk",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		view, err := client.GetInventory(user.ID)
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(view.Records) == 0 {
			sendEmbed(s, i, createEmbed("🎒 Your Trunk",
				"Empty. Not even a chocolate frog card.", colorInfo, ""))
			return
		}

		var sb strings.Builder
		for _, rec := range view.Records {
			sb.WriteString(formatRecordLine(rec))
			sb.WriteString("\n")
		}

		embed := createEmbed(
			fmt.Sprintf("🎒 Your Trunk (%d/%d slots)", view.Used, view.Capacity),
			sb.String(), colorInfo, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// UseCommand returns the item use command definition and handler
func UseCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "use",
		Description: "Drink, eat, or activate an item from your trunk",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item ID (see /inventory)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			if len(options) == 0 {
				return "", fmt.Errorf("missing required item argument")
			}

			result, err := client.UseItem(user.ID, options[0].StringValue())
			if err != nil {
				return "", err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "You used **%s**.", result.ItemID)
			if result.HPChange != 0 {
				fmt.Fprintf(&sb, "\n❤️ HP %+d → %d/%d", result.HPChange,
					result.Character.Stats.HP, result.Character.Stats.MaxHP)
			}
			if result.MPChange != 0 {
				fmt.Fprintf(&sb, "\n✨ MP %+d → %d/%d", result.MPChange,
					result.Character.Stats.MP, result.Character.Stats.MaxMP)
			}
			if !result.Consumed {
				sb.WriteString("\nThe item survived the use.")
			}
			return sb.String(), nil
		}, ResponseConfig{
			Title: "🧪 Item Used",
			Color: colorSuccess,
		})
	}

	return cmd, handler
}

// EquipCommand returns the equip command definition and handler
func EquipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "equip",
		Description: "Equip a wand, robe, accessory, or pet",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "record",
				Description: "Inventory record ID (see /inventory)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			if len(options) == 0 {
				return "", fmt.Errorf("missing required record argument")
			}

			char, err := client.EquipItem(user.ID, options[0].StringValue())
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Equipped. %s now carries their gear with pride.", char.Name), nil
		}, ResponseConfig{
			Title: "🧥 Gear Equipped",
			Color: colorSuccess,
		})
	}

	return cmd, handler
}

// MarketCommand returns the market browsing command definition and handler
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "market",
		Description: "Browse what other wizards are selling",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Filter by item ID",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		itemID := ""
		if options := getOptions(i); len(options) > 0 {
			itemID = options[0].StringValue()
		}

		listings, err := client.GetMarket(itemID, 0)
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(listings) == 0 {
			sendEmbed(s, i, createEmbed("🏪 Diagon Alley Market",
				"No listings right now. Check back after the next Hogsmeade weekend.", colorInfo, ""))
			return
		}

		var sb strings.Builder
		for _, rec := range listings {
			fmt.Fprintf(&sb, "**%s** x%d — %d galleons\n`%s`\n", rec.ItemName, rec.Quantity, rec.SalePrice, rec.ID)
		}

		sendEmbed(s, i, createEmbed("🏪 Diagon Alley Market", sb.String(), colorWarning, ""))
	}

	return cmd, handler
}
