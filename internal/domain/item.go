package domain

// ItemType classifies catalog entries.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMaterial   ItemType = "material"
	ItemTypeQuest      ItemType = "quest"
	ItemTypeSpellBook  ItemType = "spell_book"
	ItemTypePet        ItemType = "pet"
	ItemTypeKey        ItemType = "key"
	ItemTypeTreasure   ItemType = "treasure"
)

// Rarity is the item quality tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// EffectType names an item effect applied on use.
type EffectType string

const (
	EffectHeal        EffectType = "heal"
	EffectDamage      EffectType = "damage"
	EffectBuff        EffectType = "buff"
	EffectDebuff      EffectType = "debuff"
	EffectRestoreMP   EffectType = "restore_mp"
	EffectRevive      EffectType = "revive"
	EffectTeleport    EffectType = "teleport"
	EffectUnlockSpell EffectType = "unlock_spell"
)

// ItemEffect is one effect entry on a catalog item.
type ItemEffect struct {
	Type        EffectType `json:"effect_type"`
	Value       int        `json:"value,omitempty"`
	Duration    int        `json:"duration,omitempty"`
	Target      string     `json:"target,omitempty"`
	Description string     `json:"description,omitempty"`
}

// ItemStats is the stat bonus block granted while an item is equipped.
type ItemStats struct {
	HP            int `json:"hp,omitempty"`
	MP            int `json:"mp,omitempty"`
	Strength      int `json:"strength,omitempty"`
	Intelligence  int `json:"intelligence,omitempty"`
	Dexterity     int `json:"dexterity,omitempty"`
	Constitution  int `json:"constitution,omitempty"`
	Wisdom        int `json:"wisdom,omitempty"`
	Luck          int `json:"luck,omitempty"`
	MagicPower    int `json:"magic_power,omitempty"`
	PhysicalPower int `json:"physical_power,omitempty"`
	Defense       int `json:"defense,omitempty"`
	CritChance    int `json:"crit_chance,omitempty"`
	Dodge         int `json:"dodge,omitempty"`
}

// ItemRequirements gates acquisition and equipping.
type ItemRequirements struct {
	Level int    `json:"level,omitempty"`
	House House  `json:"house,omitempty"`
	Quest string `json:"quest,omitempty"`
}

// ItemPrice holds shop buy/sell values in galleons.
type ItemPrice struct {
	Buy  int `json:"buy,omitempty"`
	Sell int `json:"sell,omitempty"`
}

// Item is a static catalog definition. Immutable at runtime; inventory
// records reference it by ItemID.
type Item struct {
	ItemID       string           `json:"item_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Type         ItemType         `json:"type"`
	Rarity       Rarity           `json:"rarity"`
	Stats        ItemStats        `json:"stats"`
	Effects      []ItemEffect     `json:"effects,omitempty"`
	Requirements ItemRequirements `json:"requirements"`
	Price        ItemPrice        `json:"price"`
	Stackable    bool             `json:"stackable"`
	MaxStack     int              `json:"max_stack"`
	EquipSlot    EquipSlot        `json:"equip_slot,omitempty"`
	ConsumeOnUse bool             `json:"consume_on_use"`
	Tradeable    bool             `json:"tradeable"`
	Droppable    bool             `json:"droppable"`
	Emoji        string           `json:"emoji,omitempty"`
}
