package domain

import "time"

// Spell mastery bounds and growth cadence.
const (
	MinMastery         = 1
	MaxMastery         = 100
	UsesPerMasteryGain = 10
)

// PlayerSpell is a spell learned by a character, unique per
// (character, spell id).
type PlayerSpell struct {
	CharacterID       string    `json:"character_id"`
	SpellID           string    `json:"spell_id"`
	Name              string    `json:"name"`
	Mastery           int       `json:"mastery"`
	TimesUsed         int       `json:"times_used"`
	UnlockedAt        time.Time `json:"unlocked_at"`
	IsQuickSlot       bool      `json:"is_quick_slot"`
	QuickSlotPosition int       `json:"quick_slot_position,omitempty"`
}

// RecordUse increments the usage counter and grows mastery by 1 for every
// 10th use, capped at 100. Mastery never decreases.
func (s *PlayerSpell) RecordUse() {
	s.TimesUsed++
	if s.TimesUsed%UsesPerMasteryGain == 0 && s.Mastery < MaxMastery {
		s.Mastery++
	}
}
