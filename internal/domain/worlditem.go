package domain

import "time"

// WorldItemStatus is the world-facing state of a unique artifact.
type WorldItemStatus string

const (
	WorldItemUnclaimed WorldItemStatus = "unclaimed"
	WorldItemOwned     WorldItemStatus = "owned"
	WorldItemLost      WorldItemStatus = "lost"
	WorldItemHidden    WorldItemStatus = "hidden"
	WorldItemBossDrop  WorldItemStatus = "boss_drop"
)

// WorldItemEventKind labels entries in an artifact's history log.
type WorldItemEventKind string

const (
	WorldEventCreated     WorldItemEventKind = "created"
	WorldEventClaimed     WorldItemEventKind = "claimed"
	WorldEventTransferred WorldItemEventKind = "transferred"
	WorldEventLost        WorldItemEventKind = "lost"
	WorldEventFound       WorldItemEventKind = "found"
	WorldEventStolen      WorldItemEventKind = "stolen"
	WorldEventDropped     WorldItemEventKind = "dropped"
)

// WorldItemEvent is one append-only history entry.
type WorldItemEvent struct {
	Event     WorldItemEventKind `json:"event"`
	FromOwner string             `json:"from_owner,omitempty"`
	ToOwner   string             `json:"to_owner,omitempty"`
	Date      time.Time          `json:"date"`
	Notes     string             `json:"notes,omitempty"`
}

// ClaimRequirements gate who may claim an unowned artifact.
type ClaimRequirements struct {
	MinLevel      int    `json:"min_level,omitempty"`
	House         House  `json:"house,omitempty"`
	QuestRequired string `json:"quest_required,omitempty"`
	BossDefeated  string `json:"boss_defeated,omitempty"`
}

// WorldLocation hints where an unowned artifact rests.
type WorldLocation struct {
	Area        string `json:"area,omitempty"`
	Description string `json:"description,omitempty"`
}

// SpecialAbility describes the artifact's unique power.
type SpecialAbility struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// WorldItem is a globally unique artifact: at most one record per item id,
// at most one owner at a time.
//
// Invariant: CurrentOwner != "" if and only if Status == WorldItemOwned,
// and every ownership change appends exactly one history entry.
type WorldItem struct {
	ItemID            string            `json:"item_id"`
	Name              string            `json:"name"`
	CurrentOwner      string            `json:"current_owner,omitempty"`
	Status            WorldItemStatus   `json:"status"`
	Location          WorldLocation     `json:"location"`
	History           []WorldItemEvent  `json:"history"`
	ClaimRequirements ClaimRequirements `json:"claim_requirements"`
	SpecialStats      ItemStats         `json:"special_stats"`
	SpecialAbility    SpecialAbility    `json:"special_ability"`
	Lore              string            `json:"lore,omitempty"`
	IsTransferable    bool              `json:"is_transferable"`
	CanBeStolen       bool              `json:"can_be_stolen"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
