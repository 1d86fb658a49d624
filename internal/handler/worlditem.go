package handler

import (
	"net/http"

	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/worlditem"
)

// ClaimArtifactRequest identifies an artifact for a character to claim.
type ClaimArtifactRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
}

// HandleClaimArtifact claims an unowned world artifact.
func HandleClaimArtifact(svc worlditem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimArtifactRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim artifact"); err != nil {
			return
		}

		artifact, err := svc.Claim(r.Context(), req.DiscordID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Claim artifact", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Artifact claimed", "discord_id", req.DiscordID, "item_id", req.ItemID)

		respondJSON(w, http.StatusOK, artifact)
	}
}

// TransferArtifactRequest represents an artifact handover.
type TransferArtifactRequest struct {
	FromDiscordID string `json:"from_discord_id" validate:"required"`
	ToDiscordID   string `json:"to_discord_id" validate:"required"`
	ItemID        string `json:"item_id" validate:"required"`
}

// HandleTransferArtifact hands an artifact to another character.
func HandleTransferArtifact(svc worlditem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferArtifactRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer artifact"); err != nil {
			return
		}

		artifact, err := svc.Transfer(r.Context(), req.FromDiscordID, req.ToDiscordID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Transfer artifact", err)
			return
		}

		respondJSON(w, http.StatusOK, artifact)
	}
}

// LoseArtifactRequest represents an artifact being dropped back into the world.
type LoseArtifactRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
	Notes     string `json:"notes" validate:"max=200"`
}

// HandleLoseArtifact marks an owned artifact as lost.
func HandleLoseArtifact(svc worlditem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoseArtifactRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Lose artifact"); err != nil {
			return
		}

		artifact, err := svc.Lose(r.Context(), req.DiscordID, req.ItemID, req.Notes)
		if err != nil {
			respondServiceError(w, r, "Lose artifact", err)
			return
		}

		respondJSON(w, http.StatusOK, artifact)
	}
}

// HandleGetArtifact returns a single artifact with its full history.
func HandleGetArtifact(svc worlditem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		artifact, err := svc.GetArtifact(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, "Get artifact", err)
			return
		}

		respondJSON(w, http.StatusOK, artifact)
	}
}

// HandleGetArtifacts lists world artifacts. With owner= it lists one
// character's artifacts; with unclaimed=true only claimable ones.
func HandleGetArtifacts(svc worlditem.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		var artifacts interface{}

		switch {
		case r.URL.Query().Get("owner") != "":
			artifacts, err = svc.GetOwnedBy(r.Context(), r.URL.Query().Get("owner"))
		case r.URL.Query().Get("unclaimed") == "true":
			artifacts, err = svc.GetUnclaimed(r.Context())
		default:
			artifacts, err = svc.GetAll(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, "Get artifacts", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: artifacts})
	}
}
