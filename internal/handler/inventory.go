package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/inventory"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// HandleGetInventory returns a character's inventory records with slot usage.
// The optional "equipped" and "for_sale" query parameters filter the records.
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		query := repository.InventoryQuery{
			OnlyEquipped: r.URL.Query().Get("equipped") == "true",
			OnlyForSale:  r.URL.Query().Get("for_sale") == "true",
		}

		view, err := svc.GetInventory(r.Context(), discordID, query)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// AddItemRequest represents a request to grant items to a character.
type AddItemRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Source    string `json:"source"`
}

// HandleAddItem grants items to a character.
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		provenance := domain.Provenance{
			Kind:   domain.ProvenanceGift,
			Source: req.Source,
			Date:   time.Now(),
		}
		records, err := svc.AddItem(r.Context(), req.DiscordID, req.ItemID, req.Quantity, provenance)
		if err != nil {
			respondServiceError(w, r, "Add item", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Item added",
			"discord_id", req.DiscordID,
			"item_id", req.ItemID,
			"quantity", req.Quantity)

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgItemAddedSuccess,
			Data:    records,
		})
	}
}

// RemoveItemRequest represents a request to take items from a character.
type RemoveItemRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleRemoveItem takes items away from a character.
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
			return
		}

		if err := svc.RemoveItem(r.Context(), req.DiscordID, req.ItemID, req.Quantity); err != nil {
			respondServiceError(w, r, "Remove item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemovedSuccess})
	}
}

// TransferItemRequest represents an item gift between two characters.
type TransferItemRequest struct {
	FromDiscordID string `json:"from_discord_id" validate:"required"`
	ToDiscordID   string `json:"to_discord_id" validate:"required"`
	ItemID        string `json:"item_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
}

// HandleTransferItem moves items from one character to another.
func HandleTransferItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer item"); err != nil {
			return
		}

		if err := svc.TransferItem(r.Context(), req.FromDiscordID, req.ToDiscordID, req.ItemID, req.Quantity); err != nil {
			respondServiceError(w, r, "Transfer item", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Item transferred",
			"from", req.FromDiscordID,
			"to", req.ToDiscordID,
			"item_id", req.ItemID,
			"quantity", req.Quantity)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemTransferredSuccess})
	}
}

// EquipItemRequest identifies an inventory record to equip.
type EquipItemRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	RecordID  string `json:"record_id" validate:"required"`
}

// HandleEquipItem equips an owned item into its slot, displacing whatever
// was there.
func HandleEquipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EquipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		char, err := svc.EquipItem(r.Context(), req.DiscordID, req.RecordID)
		if err != nil {
			respondServiceError(w, r, "Equip item", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// UnequipItemRequest identifies an equipment slot to clear.
type UnequipItemRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Slot      string `json:"slot" validate:"required"`
}

// HandleUnequipItem clears an equipment slot.
func HandleUnequipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnequipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
			return
		}

		slot := domain.EquipSlot(strings.ToLower(req.Slot))
		if !slot.IsValid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		char, err := svc.UnequipItem(r.Context(), req.DiscordID, slot)
		if err != nil {
			respondServiceError(w, r, "Unequip item", err)
			return
		}

		respondJSON(w, http.StatusOK, char)
	}
}

// UseItemRequest identifies a consumable to use.
type UseItemRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	ItemID    string `json:"item_id" validate:"required"`
}

// HandleUseItem consumes an item and applies its effects.
func HandleUseItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		result, err := svc.UseItem(r.Context(), req.DiscordID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Use item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// ListForSaleRequest represents a market listing.
type ListForSaleRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	RecordID  string `json:"record_id" validate:"required"`
	Price     int    `json:"price" validate:"required,gt=0"`
}

// HandleListForSale puts an inventory record on the market.
func HandleListForSale(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ListForSaleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "List for sale"); err != nil {
			return
		}

		if err := svc.ListForSale(r.Context(), req.DiscordID, req.RecordID, req.Price); err != nil {
			respondServiceError(w, r, "List for sale", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemListedSuccess})
	}
}

// CancelSaleRequest identifies a listing to withdraw.
type CancelSaleRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	RecordID  string `json:"record_id" validate:"required"`
}

// HandleCancelSale withdraws a market listing.
func HandleCancelSale(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelSaleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cancel sale"); err != nil {
			return
		}

		if err := svc.CancelSale(r.Context(), req.DiscordID, req.RecordID); err != nil {
			respondServiceError(w, r, "Cancel sale", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSaleCancelledSuccess})
	}
}

// HandleGetMarket returns active market listings, filterable by "item_id"
// and "max_price" query parameters.
func HandleGetMarket(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, inventory.DefaultMarketPageSize, inventory.MaxMarketPageSize)
		if !ok {
			return
		}

		query := repository.MarketQuery{
			ItemID: r.URL.Query().Get("item_id"),
			Limit:  limit,
		}
		if raw := r.URL.Query().Get("max_price"); raw != "" {
			maxPrice, err := strconv.Atoi(raw)
			if err != nil || maxPrice <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			query.MaxPrice = maxPrice
		}

		listings, err := svc.GetMarket(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "Get market", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: listings})
	}
}

// BuyFromMarketRequest identifies a market listing to purchase.
type BuyFromMarketRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	RecordID  string `json:"record_id" validate:"required"`
}

// HandleBuyFromMarket purchases a market listing.
func HandleBuyFromMarket(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyFromMarketRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy from market"); err != nil {
			return
		}

		result, err := svc.BuyFromMarket(r.Context(), req.DiscordID, req.RecordID)
		if err != nil {
			respondServiceError(w, r, "Buy from market", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Market purchase completed",
			"buyer", req.DiscordID,
			"record_id", req.RecordID,
			"price", result.Price)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetShopItems returns the catalog items a character can buy at their
// level.
func HandleGetShopItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		items, err := svc.GetShopItems(r.Context(), discordID)
		if err != nil {
			respondServiceError(w, r, "Get shop items", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleFindHolders returns who holds an item and how many copies.
func HandleFindHolders(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		holders, err := svc.FindHolders(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, "Find holders", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: holders})
	}
}

// HandleMostCommonItems returns the most widely held items.
func HandleMostCommonItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, inventory.DefaultMarketPageSize, inventory.MaxMarketPageSize)
		if !ok {
			return
		}

		tallies, err := svc.MostCommonItems(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Most common items", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: tallies})
	}
}

// GrantToAllRequest represents an item grant to every character.
type GrantToAllRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// HandleGrantToAll grants an item to every character, skipping full
// inventories.
func HandleGrantToAll(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantToAllRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant to all"); err != nil {
			return
		}

		granted, err := svc.GrantToAll(r.Context(), req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Grant to all", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{
			Message: fmt.Sprintf(MsgItemsGrantedFormat, granted),
		})
	}
}
