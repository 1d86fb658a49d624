package domain

import "time"

// EquipSlot is a fixed equipment slot on a character.
type EquipSlot string

const (
	SlotWand      EquipSlot = "wand"
	SlotRobe      EquipSlot = "robe"
	SlotAccessory EquipSlot = "accessory"
	SlotPet       EquipSlot = "pet"
)

// IsValid reports whether s is one of the fixed equipment slots.
func (s EquipSlot) IsValid() bool {
	switch s {
	case SlotWand, SlotRobe, SlotAccessory, SlotPet:
		return true
	}
	return false
}

// ProvenanceKind records how an inventory record was obtained.
type ProvenanceKind string

const (
	ProvenanceDrop    ProvenanceKind = "drop"
	ProvenanceQuest   ProvenanceKind = "quest"
	ProvenanceTrade   ProvenanceKind = "trade"
	ProvenanceShop    ProvenanceKind = "shop"
	ProvenanceCraft   ProvenanceKind = "craft"
	ProvenanceGift    ProvenanceKind = "gift"
	ProvenanceStarter ProvenanceKind = "starter"
)

// Provenance tracks where a record came from.
type Provenance struct {
	Kind   ProvenanceKind `json:"kind"`
	Source string         `json:"source,omitempty"`
	Date   time.Time      `json:"date"`
}

// Enchantment is an upgrade applied to a specific inventory record.
type Enchantment struct {
	EnchantmentID string    `json:"enchantment_id"`
	Name          string    `json:"name"`
	Bonus         ItemStats `json:"bonus"`
}

// Durability is a current/max pair for items that wear out.
type Durability struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// InventoryRecord is one owned stack (or single unique piece) of an item.
//
// Invariants enforced by the inventory service:
//   - quantity >= 1; non-stackable items never exceed quantity 1
//   - at most one equipped record per (owner, slot)
//   - a locked record cannot be removed, transferred, or listed
//   - record count per owner never exceeds the owner's inventory slots
type InventoryRecord struct {
	ID           string        `json:"record_id"`
	CharacterID  string        `json:"character_id"`
	ItemID       string        `json:"item_id"`
	ItemName     string        `json:"item_name"`
	Quantity     int           `json:"quantity"`
	IsEquipped   bool          `json:"is_equipped"`
	EquipSlot    EquipSlot     `json:"equip_slot,omitempty"`
	Durability   *Durability   `json:"durability,omitempty"`
	Enchantments []Enchantment `json:"enchantments,omitempty"`
	ObtainedFrom Provenance    `json:"obtained_from"`
	IsLocked     bool          `json:"is_locked"`
	ForSale      bool          `json:"for_sale"`
	SalePrice    int           `json:"sale_price,omitempty"`
	SlotPosition int           `json:"slot_position,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
