package domain

import "strings"

// House is one of the four permanent factions assigned by the sorting quiz.
type House string

const (
	HouseGryffindor House = "Gryffindor"
	HouseHufflepuff House = "Hufflepuff"
	HouseRavenclaw  House = "Ravenclaw"
	HouseSlytherin  House = "Slytherin"
)

// Houses lists all houses in sorting-score order. The index of a house in
// this slice matches its slot in a quiz score vector.
var Houses = [4]House{HouseGryffindor, HouseHufflepuff, HouseRavenclaw, HouseSlytherin}

// IsValid reports whether h is one of the four fixed houses.
func (h House) IsValid() bool {
	switch h {
	case HouseGryffindor, HouseHufflepuff, HouseRavenclaw, HouseSlytherin:
		return true
	}
	return false
}

// ParseHouse maps a case-insensitive house name to its House value.
func ParseHouse(s string) (House, bool) {
	for _, h := range Houses {
		if strings.EqualFold(s, string(h)) {
			return h, true
		}
	}
	return "", false
}

// StatKey identifies one of the six assignable attributes.
type StatKey string

const (
	StatStrength     StatKey = "strength"
	StatIntelligence StatKey = "intelligence"
	StatDexterity    StatKey = "dexterity"
	StatConstitution StatKey = "constitution"
	StatWisdom       StatKey = "wisdom"
	StatLuck         StatKey = "luck"
)

// StatKeys lists the six assignable attributes.
var StatKeys = [6]StatKey{
	StatStrength,
	StatIntelligence,
	StatDexterity,
	StatConstitution,
	StatWisdom,
	StatLuck,
}

// IsValid reports whether k names one of the six assignable attributes.
// hp/mp are not assignable and are rejected here.
func (k StatKey) IsValid() bool {
	switch k {
	case StatStrength, StatIntelligence, StatDexterity, StatConstitution, StatWisdom, StatLuck:
		return true
	}
	return false
}

// StatGrowth maps attributes to per-level increments. Each house raises
// exactly two attributes on level-up; the table lives in gamedata and is the
// single source for both incremental level-ups and bulk recalculation.
type StatGrowth map[StatKey]int
