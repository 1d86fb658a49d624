package gamedata

import (
	"math/rand"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// WandPart is one component of a wand (wood, core or flexibility) together
// with the stat bonus it contributes.
type WandPart struct {
	ID    string
	Name  string
	Bonus domain.StatGrowth
}

// Wand length range in inches.
const (
	WandMinLength = 9
	WandMaxLength = 14
)

var WandWoods = []WandPart{
	{ID: "acacia", Name: "Acacia", Bonus: domain.StatGrowth{domain.StatIntelligence: 2}},
	{ID: "alder", Name: "Aliso", Bonus: domain.StatGrowth{domain.StatWisdom: 2}},
	{ID: "apple", Name: "Manzano", Bonus: domain.StatGrowth{domain.StatLuck: 2}},
	{ID: "ash", Name: "Fresno", Bonus: domain.StatGrowth{domain.StatConstitution: 1, domain.StatWisdom: 1}},
	{ID: "beech", Name: "Haya", Bonus: domain.StatGrowth{domain.StatIntelligence: 1, domain.StatDexterity: 1}},
	{ID: "blackthorn", Name: "Endrino", Bonus: domain.StatGrowth{domain.StatStrength: 2}},
	{ID: "cedar", Name: "Cedro", Bonus: domain.StatGrowth{domain.StatWisdom: 1, domain.StatLuck: 1}},
	{ID: "cherry", Name: "Cerezo", Bonus: domain.StatGrowth{domain.StatStrength: 1, domain.StatIntelligence: 1}},
	{ID: "chestnut", Name: "Castaño", Bonus: domain.StatGrowth{domain.StatConstitution: 2}},
	{ID: "cypress", Name: "Ciprés", Bonus: domain.StatGrowth{domain.StatDexterity: 2}},
	{ID: "elder", Name: "Saúco", Bonus: domain.StatGrowth{domain.StatIntelligence: 3, domain.StatLuck: -1}},
	{ID: "elm", Name: "Olmo", Bonus: domain.StatGrowth{domain.StatWisdom: 2}},
	{ID: "fir", Name: "Abeto", Bonus: domain.StatGrowth{domain.StatConstitution: 1, domain.StatDexterity: 1}},
	{ID: "hawthorn", Name: "Espino", Bonus: domain.StatGrowth{domain.StatStrength: 1, domain.StatLuck: 1}},
	{ID: "hazel", Name: "Avellano", Bonus: domain.StatGrowth{domain.StatIntelligence: 1, domain.StatWisdom: 1}},
	{ID: "holly", Name: "Acebo", Bonus: domain.StatGrowth{domain.StatConstitution: 1, domain.StatWisdom: 1}},
	{ID: "hornbeam", Name: "Carpe", Bonus: domain.StatGrowth{domain.StatStrength: 1, domain.StatConstitution: 1}},
	{ID: "larch", Name: "Alerce", Bonus: domain.StatGrowth{domain.StatStrength: 1, domain.StatDexterity: 1}},
	{ID: "maple", Name: "Arce", Bonus: domain.StatGrowth{domain.StatDexterity: 1, domain.StatLuck: 1}},
	{ID: "oak", Name: "Roble", Bonus: domain.StatGrowth{domain.StatStrength: 2}},
	{ID: "pine", Name: "Pino", Bonus: domain.StatGrowth{domain.StatIntelligence: 2}},
	{ID: "poplar", Name: "Álamo", Bonus: domain.StatGrowth{domain.StatWisdom: 2}},
	{ID: "rowan", Name: "Serbal", Bonus: domain.StatGrowth{domain.StatWisdom: 1, domain.StatConstitution: 1}},
	{ID: "vine", Name: "Vid", Bonus: domain.StatGrowth{domain.StatIntelligence: 1, domain.StatLuck: 1}},
	{ID: "walnut", Name: "Nogal", Bonus: domain.StatGrowth{domain.StatIntelligence: 2}},
	{ID: "willow", Name: "Sauce", Bonus: domain.StatGrowth{domain.StatWisdom: 2}},
	{ID: "yew", Name: "Tejo", Bonus: domain.StatGrowth{domain.StatStrength: 1, domain.StatIntelligence: 1}},
}

var WandCores = []WandPart{
	{ID: "phoenix", Name: "Pluma de Fénix", Bonus: domain.StatGrowth{domain.StatIntelligence: 2, domain.StatWisdom: 1}},
	{ID: "dragon", Name: "Fibra de Corazón de Dragón", Bonus: domain.StatGrowth{domain.StatStrength: 2, domain.StatIntelligence: 1}},
	{ID: "unicorn", Name: "Pelo de Unicornio", Bonus: domain.StatGrowth{domain.StatWisdom: 2, domain.StatLuck: 1}},
	{ID: "veela", Name: "Cabello de Veela", Bonus: domain.StatGrowth{domain.StatDexterity: 2, domain.StatLuck: 1}},
	{ID: "thestral", Name: "Pelo de Thestral", Bonus: domain.StatGrowth{domain.StatIntelligence: 3}},
	{ID: "basilisk", Name: "Cuerno de Basilisco", Bonus: domain.StatGrowth{domain.StatStrength: 3}},
	{ID: "kelpie", Name: "Pelo de Kelpie", Bonus: domain.StatGrowth{domain.StatConstitution: 2, domain.StatDexterity: 1}},
}

var WandFlexibilities = []WandPart{
	{ID: "rigid", Name: "Rígida", Bonus: domain.StatGrowth{domain.StatStrength: 1}},
	{ID: "quite_rigid", Name: "Bastante rígida", Bonus: domain.StatGrowth{domain.StatConstitution: 1}},
	{ID: "slightly_yielding", Name: "Ligeramente flexible", Bonus: domain.StatGrowth{domain.StatLuck: 1}},
	{ID: "flexible", Name: "Flexible", Bonus: domain.StatGrowth{domain.StatDexterity: 1}},
	{ID: "quite_flexible", Name: "Bastante flexible", Bonus: domain.StatGrowth{domain.StatWisdom: 1}},
	{ID: "supple", Name: "Dócil", Bonus: domain.StatGrowth{domain.StatIntelligence: 1}},
	{ID: "unyielding", Name: "Inflexible", Bonus: domain.StatGrowth{domain.StatStrength: 2, domain.StatLuck: -1}},
	{ID: "springy", Name: "Elástica", Bonus: domain.StatGrowth{domain.StatDexterity: 2, domain.StatConstitution: -1}},
}

// GenerateRandomWand rolls a wand at character creation. The wand is
// immutable afterwards; bonuses are recomputed from the part tables when
// needed so the character document stores only the part names.
func GenerateRandomWand() domain.Wand {
	wood := WandWoods[rand.Intn(len(WandWoods))]
	core := WandCores[rand.Intn(len(WandCores))]
	flex := WandFlexibilities[rand.Intn(len(WandFlexibilities))]

	return domain.Wand{
		Wood:        wood.Name,
		Core:        core.Name,
		Length:      WandMinLength + rand.Intn(WandMaxLength-WandMinLength+1),
		Flexibility: flex.Name,
	}
}

func findPart(parts []WandPart, name string) *WandPart {
	for i := range parts {
		if parts[i].Name == name {
			return &parts[i]
		}
	}
	return nil
}

// WandBonuses sums the stat bonuses of a wand's parts. Unknown part names
// contribute nothing, so wands from older content stay usable.
func WandBonuses(wand domain.Wand) domain.StatGrowth {
	bonuses := domain.StatGrowth{}

	for _, part := range []*WandPart{
		findPart(WandWoods, wand.Wood),
		findPart(WandCores, wand.Core),
		findPart(WandFlexibilities, wand.Flexibility),
	} {
		if part == nil {
			continue
		}
		for key, amount := range part.Bonus {
			bonuses[key] += amount
		}
	}

	return bonuses
}
