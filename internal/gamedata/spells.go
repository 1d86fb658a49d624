package gamedata

// SpellDef is a static spell definition. Player mastery lives in
// domain.PlayerSpell; this is catalog data only.
type SpellDef struct {
	SpellID     string `json:"spell_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	MPCost      int    `json:"mp_cost"`
	BaseDamage  int    `json:"base_damage,omitempty"`
	BaseHealing int    `json:"base_healing,omitempty"`
	Scaling     string `json:"scaling,omitempty"`
	// MinLevel gates learning; starter spells use 1.
	MinLevel int `json:"min_level,omitempty"`
}

// StarterSpells are granted to every new character at mastery 1.
var StarterSpells = []SpellDef{
	{SpellID: "lumos", Name: "Lumos", Description: "Crea una luz brillante en la punta de la varita.", Type: "utility", MPCost: 5},
	{SpellID: "nox", Name: "Nox", Description: "Apaga la luz de Lumos.", Type: "utility", MPCost: 2},
	{SpellID: "flipendo", Name: "Flipendo", Description: "Hechizo de empuje que causa daño menor.", Type: "attack", MPCost: 10, BaseDamage: 15, Scaling: "intelligence"},
	{SpellID: "protego", Name: "Protego", Description: "Crea un escudo mágico protector.", Type: "defense", MPCost: 15},
}

// LearnableSpells are unlocked through spell books, quests, or level gates.
var LearnableSpells = []SpellDef{
	{SpellID: "expelliarmus", Name: "Expelliarmus", Description: "Desarma al oponente.", Type: "attack", MPCost: 12, BaseDamage: 20, Scaling: "intelligence", MinLevel: 3},
	{SpellID: "wingardium_leviosa", Name: "Wingardium Leviosa", Description: "Hace levitar objetos.", Type: "utility", MPCost: 8, MinLevel: 2},
	{SpellID: "incendio", Name: "Incendio", Description: "Conjura llamas desde la varita.", Type: "attack", MPCost: 18, BaseDamage: 30, Scaling: "intelligence", MinLevel: 5},
	{SpellID: "episkey", Name: "Episkey", Description: "Cura heridas menores.", Type: "healing", MPCost: 15, BaseHealing: 25, Scaling: "wisdom", MinLevel: 4},
	{SpellID: "stupefy", Name: "Stupefy", Description: "Aturde al objetivo.", Type: "attack", MPCost: 20, BaseDamage: 35, Scaling: "intelligence", MinLevel: 7},
	{SpellID: "expecto_patronum", Name: "Expecto Patronum", Description: "Invoca un patronus protector.", Type: "defense", MPCost: 40, MinLevel: 12},
	{SpellID: "bombarda", Name: "Bombarda", Description: "Provoca una explosión.", Type: "attack", MPCost: 30, BaseDamage: 55, Scaling: "intelligence", MinLevel: 10},
	{SpellID: "vulnera_sanentur", Name: "Vulnera Sanentur", Description: "Cierra heridas graves.", Type: "healing", MPCost: 35, BaseHealing: 60, Scaling: "wisdom", MinLevel: 11},
}

// SpellByID returns a static spell definition, or nil if unknown.
func SpellByID(spellID string) *SpellDef {
	for i := range StarterSpells {
		if StarterSpells[i].SpellID == spellID {
			return &StarterSpells[i]
		}
	}
	for i := range LearnableSpells {
		if LearnableSpells[i].SpellID == spellID {
			return &LearnableSpells[i]
		}
	}
	return nil
}

// AllSpells returns the full catalog, starters first.
func AllSpells() []SpellDef {
	all := make([]SpellDef, 0, len(StarterSpells)+len(LearnableSpells))
	all = append(all, StarterSpells...)
	all = append(all, LearnableSpells...)
	return all
}
