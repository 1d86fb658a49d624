package handler

import (
	"net/http"
	"strings"

	"github.com/mirefall/GrimoireBot_Go/internal/character"
	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
)

// CreateCharacterRequest represents the request to create a character.
// The house comes from a completed sorting quiz.
type CreateCharacterRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Name      string `json:"name" validate:"required,max=32"`
	House     string `json:"house" validate:"required,house"`
}

// HandleCreateCharacter registers a new character for a Discord identity.
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		house, ok := domain.ParseHouse(req.House)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidHouseError)
			return
		}
		char, err := svc.CreateCharacter(r.Context(), req.DiscordID, req.Username, req.Name, house)
		if err != nil {
			respondServiceError(w, r, "Create character", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Character created",
			"discord_id", req.DiscordID,
			"name", char.Name,
			"house", char.House)

		respondJSON(w, http.StatusCreated, char)
	}
}

// HandleGetCharacter returns the character sheet for a Discord identity.
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		char, err := svc.GetByDiscordID(r.Context(), discordID)
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// HandleDeleteCharacter permanently removes a character.
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		if err := svc.DeleteCharacter(r.Context(), discordID); err != nil {
			respondServiceError(w, r, "Delete character", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
	}
}

// GrantExperienceRequest represents an experience award.
type GrantExperienceRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Amount    int    `json:"amount" validate:"required,gt=0"`
	Source    string `json:"source"`
}

// HandleGrantExperience awards experience, levelling the character up as needed.
func HandleGrantExperience(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantExperienceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant experience"); err != nil {
			return
		}

		result, err := svc.AddExperience(r.Context(), req.DiscordID, req.Amount, req.Source)
		if err != nil {
			respondServiceError(w, r, "Grant experience", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// AssignAttributesRequest represents an attribute point allocation.
type AssignAttributesRequest struct {
	DiscordID   string         `json:"discord_id" validate:"required"`
	Allocations map[string]int `json:"allocations" validate:"required,min=1"`
}

// HandleAssignAttributes spends unspent attribute points.
func HandleAssignAttributes(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssignAttributesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Assign attributes"); err != nil {
			return
		}

		allocations := make(map[domain.StatKey]int, len(req.Allocations))
		for stat, points := range req.Allocations {
			allocations[domain.StatKey(strings.ToLower(stat))] = points
		}

		char, err := svc.AssignAttributePoints(r.Context(), req.DiscordID, allocations)
		if err != nil {
			respondServiceError(w, r, "Assign attributes", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// CharacterActionRequest identifies a character for a body-less state change.
type CharacterActionRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
}

// HandleRest restores a character to full HP and MP.
func HandleRest(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CharacterActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rest"); err != nil {
			return
		}

		char, err := svc.Rest(r.Context(), req.DiscordID)
		if err != nil {
			respondServiceError(w, r, "Rest", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// AdjustVitalsRequest represents a damage or healing amount.
type AdjustVitalsRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Amount    int    `json:"amount" validate:"required,gt=0"`
}

// HandleTakeDamage applies damage to a character.
func HandleTakeDamage(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustVitalsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Take damage"); err != nil {
			return
		}

		char, err := svc.TakeDamage(r.Context(), req.DiscordID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Take damage", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// HandleHeal restores hit points to a character.
func HandleHeal(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustVitalsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Heal"); err != nil {
			return
		}

		char, err := svc.Heal(r.Context(), req.DiscordID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Heal", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// AdjustGalleonsRequest represents a galleon grant or deduction.
type AdjustGalleonsRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Amount    int    `json:"amount" validate:"required"`
}

// HandleAddGalleons adjusts a character's galleon balance. Negative amounts
// deduct and fail when the balance cannot cover them.
func HandleAddGalleons(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdjustGalleonsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust galleons"); err != nil {
			return
		}

		char, err := svc.AddGalleons(r.Context(), req.DiscordID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Adjust galleons", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// HandleGetLeaderboard returns the top characters by experience, optionally
// scoped to one house via the "house" query parameter.
func HandleGetLeaderboard(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, character.DefaultLeaderboardSize, character.MaxLeaderboardSize)
		if !ok {
			return
		}

		var (
			chars []domain.Character
			err   error
		)
		if houseParam := r.URL.Query().Get("house"); houseParam != "" {
			house, ok := domain.ParseHouse(houseParam)
			if !ok {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidHouseError)
				return
			}
			chars, err = svc.GetHouseLeaderboard(r.Context(), house, limit)
		} else {
			chars, err = svc.GetLeaderboard(r.Context(), limit)
		}
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: chars})
	}
}
