package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Characters

CREATE TABLE IF NOT EXISTS characters (
    character_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    discord_id VARCHAR(32) UNIQUE NOT NULL,
    discord_username VARCHAR(100) NOT NULL,
    name VARCHAR(50) NOT NULL,
    house VARCHAR(20) NOT NULL,
    title VARCHAR(100) NOT NULL,
    wand JSONB NOT NULL DEFAULT '{}',
    stats JSONB NOT NULL DEFAULT '{}',
    attribute_points INTEGER NOT NULL DEFAULT 0,
    level INTEGER NOT NULL DEFAULT 1,
    experience INTEGER NOT NULL DEFAULT 0,
    total_experience INTEGER NOT NULL DEFAULT 0,
    galleons INTEGER NOT NULL DEFAULT 0,
    inventory_slots INTEGER NOT NULL DEFAULT 20,
    equipment JSONB NOT NULL DEFAULT '{}',
    game_stats JSONB NOT NULL DEFAULT '{}',
    status JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_characters_house ON characters(house);
CREATE INDEX IF NOT EXISTS idx_characters_level ON characters(level DESC, total_experience DESC);

-- Item Catalog

CREATE TABLE IF NOT EXISTS items (
    item_id VARCHAR(100) PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    item_type VARCHAR(30) NOT NULL,
    rarity VARCHAR(20) NOT NULL,
    buy_price INTEGER NOT NULL DEFAULT 0,
    required_level INTEGER NOT NULL DEFAULT 0,
    item_data JSONB NOT NULL
);

-- Inventory Records

CREATE TABLE IF NOT EXISTS inventory_records (
    record_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    item_id VARCHAR(100) NOT NULL REFERENCES items(item_id) ON DELETE RESTRICT,
    item_name VARCHAR(100) NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
    is_equipped BOOLEAN NOT NULL DEFAULT FALSE,
    equip_slot VARCHAR(20),
    durability JSONB,
    enchantments JSONB NOT NULL DEFAULT '[]',
    obtained_from JSONB NOT NULL DEFAULT '{}',
    is_locked BOOLEAN NOT NULL DEFAULT FALSE,
    for_sale BOOLEAN NOT NULL DEFAULT FALSE,
    sale_price INTEGER NOT NULL DEFAULT 0,
    slot_position INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_inventory_character ON inventory_records(character_id);
CREATE INDEX IF NOT EXISTS idx_inventory_market ON inventory_records(item_id, sale_price) WHERE for_sale;

-- At most one equipped record per character and slot
CREATE UNIQUE INDEX IF NOT EXISTS idx_inventory_equipped_slot
    ON inventory_records(character_id, equip_slot) WHERE is_equipped;

-- Learned Spells

CREATE TABLE IF NOT EXISTS player_spells (
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    spell_id VARCHAR(100) NOT NULL,
    spell_name VARCHAR(100) NOT NULL,
    mastery INTEGER NOT NULL DEFAULT 1,
    times_used INTEGER NOT NULL DEFAULT 0,
    unlocked_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    is_quick_slot BOOLEAN NOT NULL DEFAULT FALSE,
    quick_slot_position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (character_id, spell_id)
);

CREATE INDEX IF NOT EXISTS idx_player_spells_spell ON player_spells(spell_id, mastery DESC);

-- World Artifacts

CREATE TABLE IF NOT EXISTS world_items (
    item_id VARCHAR(100) PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    current_owner UUID REFERENCES characters(character_id) ON DELETE SET NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'unclaimed',
    location JSONB NOT NULL DEFAULT '{}',
    history JSONB NOT NULL DEFAULT '[]',
    claim_requirements JSONB NOT NULL DEFAULT '{}',
    special_stats JSONB NOT NULL DEFAULT '{}',
    special_ability JSONB NOT NULL DEFAULT '{}',
    lore TEXT NOT NULL DEFAULT '',
    is_transferable BOOLEAN NOT NULL DEFAULT TRUE,
    can_be_stolen BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_world_items_owner ON world_items(current_owner) WHERE current_owner IS NOT NULL;
`
