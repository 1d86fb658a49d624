package handler

import (
	"net/http"

	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/spellbook"
)

// SpellRequest identifies a spell for a character operation.
type SpellRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	SpellID   string `json:"spell_id" validate:"required"`
}

// HandleLearnSpell teaches a character a spell at minimum mastery.
func HandleLearnSpell(svc spellbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SpellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Learn spell"); err != nil {
			return
		}

		if err := svc.LearnSpell(r.Context(), req.DiscordID, req.SpellID); err != nil {
			respondServiceError(w, r, "Learn spell", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Spell learned", "discord_id", req.DiscordID, "spell_id", req.SpellID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSpellLearnedSuccess})
	}
}

// HandleCastSpell casts a known spell, spending MP and growing mastery.
func HandleCastSpell(svc spellbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SpellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cast spell"); err != nil {
			return
		}

		result, err := svc.UseSpell(r.Context(), req.DiscordID, req.SpellID)
		if err != nil {
			respondServiceError(w, r, "Cast spell", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetSpellbook returns every spell a character knows.
func HandleGetSpellbook(svc spellbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		spells, err := svc.GetSpellbook(r.Context(), discordID)
		if err != nil {
			respondServiceError(w, r, "Get spellbook", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: spells})
	}
}

// HandleGetSpell returns one known spell with its mastery.
func HandleGetSpell(svc spellbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}
		spellID, ok := GetQueryParam(r, w, "spell_id")
		if !ok {
			return
		}

		view, err := svc.GetSpell(r.Context(), discordID, spellID)
		if err != nil {
			respondServiceError(w, r, "Get spell", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleTopMastery returns the mastery leaderboard for one spell.
func HandleTopMastery(svc spellbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spellID, ok := GetQueryParam(r, w, "spell_id")
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w, spellbook.DefaultLeaderboardSize, spellbook.MaxLeaderboardSize)
		if !ok {
			return
		}

		top, err := svc.TopMastery(r.Context(), spellID, limit)
		if err != nil {
			respondServiceError(w, r, "Top mastery", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: top})
	}
}

func HandleCountKnownBy(svc spellbook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spellID, ok := GetQueryParam(r, w, "spell_id")
		if !ok {
			return
		}

		count, err := svc.CountKnownBy(r.Context(), spellID)
		if err != nil {
			respondServiceError(w, r, "Count known by", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]int{"count": count})
	}
}
