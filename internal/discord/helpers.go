package discord

import (
	"fmt"
	"strings"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
)

// Embed colors for non-house responses
const (
	colorSuccess = 0x2ecc71
	colorInfo    = 0x3498db
	colorWarning = 0xf39c12
	colorMagic   = 0x9b59b6
)

// houseColor returns the embed color for a house, falling back to neutral
func houseColor(house domain.House) int {
	if c := gamedata.HouseDetails(house).Color; c != 0 {
		return c
	}
	return colorInfo
}

// houseEmoji returns the crest emoji for a house
func houseEmoji(house domain.House) string {
	return gamedata.HouseDetails(house).Emoji
}

// vitalsBar renders a 10-segment bar for hp/mp style gauges
func vitalsBar(current, max int) string {
	if max <= 0 {
		return ""
	}
	filled := current * 10 / max
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// formatRecordLine renders one inventory record for list output
func formatRecordLine(rec domain.InventoryRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** x%d", rec.ItemName, rec.Quantity)
	if rec.IsEquipped {
		sb.WriteString(" *(equipped)*")
	}
	if rec.ForSale {
		sb.WriteString(" 🏷️")
	}
	if rec.Durability != nil {
		fmt.Fprintf(&sb, " [%d/%d]", rec.Durability.Current, rec.Durability.Max)
	}
	fmt.Fprintf(&sb, "\n`%s`", rec.ItemID)
	return sb.String()
}

// masteryStars renders spell mastery (0-100) as a five-star scale
func masteryStars(mastery int) string {
	stars := mastery / 20
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}
