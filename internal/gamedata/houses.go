package gamedata

import "github.com/mirefall/GrimoireBot_Go/internal/domain"

// HouseInfo bundles the static data of one house.
type HouseInfo struct {
	Bonus          domain.StatGrowth
	Growth         domain.StatGrowth
	Description    string
	SpecialAbility string
	Color          int
	Emoji          string
}

// houses holds creation bonuses and per-level growth. The growth table is
// the single source for level-up increments; both the incremental level-up
// path and the bulk recalculation path read it.
var houses = map[domain.House]HouseInfo{
	domain.HouseGryffindor: {
		Bonus:          domain.StatGrowth{domain.StatStrength: 3, domain.StatConstitution: 2},
		Growth:         domain.StatGrowth{domain.StatStrength: 1, domain.StatConstitution: 1},
		Description:    "Los valientes de corazón reciben bonus a Fuerza y Constitución.",
		SpecialAbility: "Coraje del León - 10% más daño cuando HP < 30%",
		Color:          0x740001,
		Emoji:          "🦁",
	},
	domain.HouseHufflepuff: {
		Bonus:          domain.StatGrowth{domain.StatConstitution: 3, domain.StatWisdom: 2},
		Growth:         domain.StatGrowth{domain.StatConstitution: 1, domain.StatWisdom: 1},
		Description:    "Los leales y justos reciben bonus a Constitución y Sabiduría.",
		SpecialAbility: "Determinación - Regenera 2% HP por turno",
		Color:          0xFFD800,
		Emoji:          "🦡",
	},
	domain.HouseRavenclaw: {
		Bonus:          domain.StatGrowth{domain.StatIntelligence: 3, domain.StatWisdom: 1, domain.StatDexterity: 1},
		Growth:         domain.StatGrowth{domain.StatIntelligence: 1, domain.StatWisdom: 1},
		Description:    "Los sabios e ingeniosos reciben bonus a Inteligencia.",
		SpecialAbility: "Mente Brillante - Hechizos cuestan 10% menos MP",
		Color:          0x0E1A40,
		Emoji:          "🦅",
	},
	domain.HouseSlytherin: {
		Bonus:          domain.StatGrowth{domain.StatStrength: 1, domain.StatDexterity: 2, domain.StatIntelligence: 1, domain.StatLuck: 1},
		Growth:         domain.StatGrowth{domain.StatDexterity: 1, domain.StatLuck: 1},
		Description:    "Los astutos y ambiciosos reciben bonus equilibrados.",
		SpecialAbility: "Astucia - 15% más probabilidad de crítico",
		Color:          0x1A472A,
		Emoji:          "🐍",
	},
}

// HouseBonuses returns the creation-time stat bonus for a house.
func HouseBonuses(house domain.House) domain.StatGrowth {
	return houses[house].Bonus
}

// HouseLevelGrowth returns the per-level stat growth for a house.
func HouseLevelGrowth(house domain.House) domain.StatGrowth {
	return houses[house].Growth
}

// HouseDetails returns the full static record for a house.
func HouseDetails(house domain.House) HouseInfo {
	return houses[house]
}
