package gamedata

import "github.com/mirefall/GrimoireBot_Go/internal/domain"

// SeedArtifacts returns the unique world artifacts created on first setup.
// Each is a fresh value so callers may mutate freely.
func SeedArtifacts() []domain.WorldItem {
	return []domain.WorldItem{
		{
			ItemID: "elder_wand",
			Name:   "La Varita de Saúco",
			Status: domain.WorldItemHidden,
			Location: domain.WorldLocation{
				Area:        "Bosque Prohibido",
				Description: "Enterrada donde cayó su último dueño.",
			},
			ClaimRequirements: domain.ClaimRequirements{MinLevel: 20},
			SpecialStats:      domain.ItemStats{MagicPower: 50, Intelligence: 10},
			SpecialAbility: domain.SpecialAbility{
				Name:        "Lealtad de la Varita",
				Description: "Duplica el poder mágico de su dueño legítimo.",
			},
			Lore:           "La varita más poderosa jamás creada, una de las Reliquias de la Muerte.",
			IsTransferable: true,
			CanBeStolen:    true,
		},
		{
			ItemID: "resurrection_stone",
			Name:   "La Piedra de la Resurrección",
			Status: domain.WorldItemLost,
			Location: domain.WorldLocation{
				Area:        "Bosque Prohibido",
				Description: "Perdida entre las hojas.",
			},
			ClaimRequirements: domain.ClaimRequirements{MinLevel: 15},
			SpecialStats:      domain.ItemStats{Wisdom: 15},
			SpecialAbility: domain.SpecialAbility{
				Name:        "Eco de los Caídos",
				Description: "Permite hablar con las sombras de los muertos.",
			},
			Lore:           "Segunda Reliquia de la Muerte, engarzada en el anillo de los Gaunt.",
			IsTransferable: true,
			CanBeStolen:    false,
		},
		{
			ItemID: "invisibility_cloak",
			Name:   "La Capa de Invisibilidad",
			Status: domain.WorldItemUnclaimed,
			Location: domain.WorldLocation{
				Area:        "Hogwarts",
				Description: "Guardada en un despacho, esperando heredero.",
			},
			ClaimRequirements: domain.ClaimRequirements{MinLevel: 5},
			SpecialStats:      domain.ItemStats{Dodge: 30, Luck: 5},
			SpecialAbility: domain.SpecialAbility{
				Name:        "Invisibilidad Verdadera",
				Description: "Oculta por completo a quien la viste.",
			},
			Lore:           "Tercera Reliquia de la Muerte, transmitida de generación en generación.",
			IsTransferable: true,
			CanBeStolen:    false,
		},
		{
			ItemID: "sword_of_gryffindor",
			Name:   "La Espada de Gryffindor",
			Status: domain.WorldItemHidden,
			Location: domain.WorldLocation{
				Area:        "Sombrero Seleccionador",
				Description: "Se presenta ante un Gryffindor digno.",
			},
			ClaimRequirements: domain.ClaimRequirements{
				MinLevel: 10,
				House:    domain.HouseGryffindor,
			},
			SpecialStats: domain.ItemStats{Strength: 20, PhysicalPower: 40},
			SpecialAbility: domain.SpecialAbility{
				Name:        "Acero Impregnado",
				Description: "Absorbe aquello que la hace más fuerte.",
			},
			Lore:           "Forjada por duendes para Godric Gryffindor.",
			IsTransferable: false,
			CanBeStolen:    false,
		},
		{
			ItemID: "diadem_of_ravenclaw",
			Name:   "La Diadema de Ravenclaw",
			Status: domain.WorldItemLost,
			Location: domain.WorldLocation{
				Area:        "Sala de los Menesteres",
				Description: "Oculta entre siglos de objetos olvidados.",
			},
			ClaimRequirements: domain.ClaimRequirements{
				MinLevel: 12,
				House:    domain.HouseRavenclaw,
			},
			SpecialStats: domain.ItemStats{Intelligence: 25, Wisdom: 10},
			SpecialAbility: domain.SpecialAbility{
				Name:        "Sabiduría Sin Medida",
				Description: "Agudiza el ingenio de quien la porta.",
			},
			Lore:           "La diadema perdida de Rowena Ravenclaw.",
			IsTransferable: false,
			CanBeStolen:    true,
		},
	}
}
