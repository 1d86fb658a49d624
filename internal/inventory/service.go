package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/concurrency"
	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/naming"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// View is a character's inventory with capacity information
type View struct {
	Records  []domain.InventoryRecord `json:"records"`
	Used     int                      `json:"used"`
	Capacity int                      `json:"capacity"`
}

// UseResult reports what a consumable did
type UseResult struct {
	ItemID    string            `json:"item_id"`
	Consumed  bool              `json:"consumed"`
	HPChange  int               `json:"hp_change,omitempty"`
	MPChange  int               `json:"mp_change,omitempty"`
	Character *domain.Character `json:"character"`
}

// PurchaseResult reports a completed market purchase
type PurchaseResult struct {
	Record   *domain.InventoryRecord `json:"record"`
	Price    int                     `json:"price"`
	SellerID string                  `json:"seller_id"`
}

// Service defines the inventory ledger business logic
type Service interface {
	GetInventory(ctx context.Context, discordID string, query repository.InventoryQuery) (*View, error)

	AddItem(ctx context.Context, discordID, itemID string, quantity int, provenance domain.Provenance) ([]domain.InventoryRecord, error)
	RemoveItem(ctx context.Context, discordID, itemID string, quantity int) error
	TransferItem(ctx context.Context, fromDiscordID, toDiscordID, itemID string, quantity int) error

	EquipItem(ctx context.Context, discordID, recordID string) (*domain.Character, error)
	UnequipItem(ctx context.Context, discordID string, slot domain.EquipSlot) (*domain.Character, error)
	UseItem(ctx context.Context, discordID, itemID string) (*UseResult, error)

	// Market
	ListForSale(ctx context.Context, discordID, recordID string, price int) error
	CancelSale(ctx context.Context, discordID, recordID string) error
	GetMarket(ctx context.Context, query repository.MarketQuery) ([]domain.InventoryRecord, error)
	BuyFromMarket(ctx context.Context, buyerDiscordID, recordID string) (*PurchaseResult, error)
	GetShopItems(ctx context.Context, discordID string) ([]domain.Item, error)

	// Admin
	FindHolders(ctx context.Context, itemID string) ([]repository.ItemHolding, error)
	MostCommonItems(ctx context.Context, limit int) ([]repository.ItemTally, error)
	GrantToAll(ctx context.Context, itemID string, quantity int) (int, error)
}

type service struct {
	repo       repository.Inventory
	catalog    repository.Item
	characters repository.Character
	bus        event.Bus
	locks      *concurrency.LockManager
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, catalog repository.Item, characters repository.Character, bus event.Bus) Service {
	return &service{
		repo:       repo,
		catalog:    catalog,
		characters: characters,
		bus:        bus,
		locks:      concurrency.NewLockManager(),
	}
}

// lockCharacter serializes mutations per character. Slot accounting is a
// read-then-write, so concurrent grants to the same character could both
// pass the capacity check without this.
func (s *service) lockCharacter(characterID string) func() {
	return s.locks.Acquire(characterID)
}

// lockCharacterPair locks two characters in a fixed order to avoid
// deadlocking opposing transfers.
func (s *service) lockCharacterPair(a, b string) func() {
	if b < a {
		a, b = b, a
	}
	first := s.locks.GetLock(a)
	second := s.locks.GetLock(b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// lookupItem resolves an item by ID, falling back to a case- and
// accent-insensitive match over catalog IDs and display names so a
// user-typed "poción de curación" finds pocion_curacion.
func (s *service) lookupItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.catalog.GetByItemID(ctx, itemID)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}

	all, allErr := s.catalog.GetAll(ctx)
	if allErr != nil {
		return nil, err
	}
	resolver := naming.NewResolver()
	for i := range all {
		resolver.Register(all[i].ItemID, all[i].Name)
	}
	id, ok := resolver.Resolve(itemID)
	if !ok {
		return nil, err
	}
	return s.catalog.GetByItemID(ctx, id)
}

// GetInventory lists a character's records with slot usage
func (s *service) GetInventory(ctx context.Context, discordID string, query repository.InventoryQuery) (*View, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.GetByCharacter(ctx, character.ID, query)
	if err != nil {
		return nil, err
	}
	used, err := s.repo.CountSlots(ctx, character.ID)
	if err != nil {
		return nil, err
	}

	return &View{
		Records:  records,
		Used:     used,
		Capacity: character.InventorySlots,
	}, nil
}

// AddItem grants quantity of an item, stacking onto an existing unequipped
// record before opening new ones. Fails with ErrInventoryFull when the grant
// needs more slots than the character has free; nothing is granted then.
func (s *service) AddItem(ctx context.Context, discordID, itemID string, quantity int, provenance domain.Provenance) ([]domain.InventoryRecord, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	defer s.lockCharacter(character.ID)()

	if provenance.Date.IsZero() {
		provenance.Date = time.Now()
	}

	touched, err := s.addToCharacter(ctx, s.repo, character, item, quantity, provenance)
	if err != nil {
		return nil, err
	}

	character.GameStats.ItemsCollected += quantity
	if err := s.characters.Update(ctx, character); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.ItemAcquired,
		Payload: map[string]interface{}{
			"character_id": character.ID,
			"item_id":      item.ItemID,
			"quantity":     quantity,
			"kind":         string(provenance.Kind),
		},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish item acquired event", "error", err)
	}

	return touched, nil
}

// recordStore is the subset of record operations shared by the repository
// and an open transaction, so grants can run in either.
type recordStore interface {
	FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error)
	CountSlots(ctx context.Context, characterID string) (int, error)
	CreateRecord(ctx context.Context, record *domain.InventoryRecord) error
	UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error
}

func (s *service) addToCharacter(ctx context.Context, store recordStore, character *domain.Character, item *domain.Item, quantity int, provenance domain.Provenance) ([]domain.InventoryRecord, error) {
	touched := []domain.InventoryRecord{}
	remaining := quantity

	// Top up an existing stack first
	if item.Stackable {
		existing, err := store.FindUnequipped(ctx, character.ID, item.ItemID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Quantity < item.MaxStack {
			take := item.MaxStack - existing.Quantity
			if take > remaining {
				take = remaining
			}
			existing.Quantity += take
			if err := store.UpdateRecord(ctx, existing); err != nil {
				return nil, err
			}
			touched = append(touched, *existing)
			remaining -= take
		}
	}

	if remaining == 0 {
		return touched, nil
	}

	// New records: stackables open stacks of MaxStack, uniques one each
	perRecord := 1
	if item.Stackable {
		perRecord = item.MaxStack
	}
	newRecords := (remaining + perRecord - 1) / perRecord

	used, err := store.CountSlots(ctx, character.ID)
	if err != nil {
		return nil, err
	}
	if used+newRecords > character.InventorySlots {
		return nil, domain.ErrInventoryFull
	}

	for remaining > 0 {
		take := perRecord
		if take > remaining {
			take = remaining
		}
		record := &domain.InventoryRecord{
			CharacterID:  character.ID,
			ItemID:       item.ItemID,
			ItemName:     item.Name,
			Quantity:     take,
			ObtainedFrom: provenance,
		}
		if err := store.CreateRecord(ctx, record); err != nil {
			return nil, err
		}
		touched = append(touched, *record)
		remaining -= take
	}

	return touched, nil
}

// RemoveItem takes quantity of an item from unequipped, unlocked records,
// deleting records that reach zero. Equipped or locked copies don't count
// toward the removable total.
func (s *service) RemoveItem(ctx context.Context, discordID, itemID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}

	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return err
	}
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return err
	}

	defer s.lockCharacter(character.ID)()

	records, err := s.repo.GetByCharacter(ctx, character.ID, repository.InventoryQuery{})
	if err != nil {
		return err
	}

	removable := []domain.InventoryRecord{}
	total := 0
	locked := false
	for _, r := range records {
		if r.ItemID != item.ItemID {
			continue
		}
		if r.IsLocked {
			locked = true
			continue
		}
		if r.IsEquipped {
			continue
		}
		removable = append(removable, r)
		total += r.Quantity
	}

	if len(removable) == 0 {
		if locked {
			return domain.ErrItemLocked
		}
		return domain.ErrItemNotFound
	}
	if total < quantity {
		return domain.ErrInsufficientQuantity
	}

	remaining := quantity
	for i := range removable {
		if remaining == 0 {
			break
		}
		r := &removable[i]
		if r.Quantity <= remaining {
			remaining -= r.Quantity
			if err := s.repo.DeleteRecord(ctx, r.ID); err != nil {
				return err
			}
			continue
		}
		r.Quantity -= remaining
		remaining = 0
		if err := s.repo.UpdateRecord(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// TransferItem gifts quantity of an item to another character. Runs in one
// transaction so the item cannot be duplicated by a crash mid-move.
func (s *service) TransferItem(ctx context.Context, fromDiscordID, toDiscordID, itemID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if fromDiscordID == toDiscordID {
		return domain.ErrInvalidInput
	}

	sender, err := s.characters.GetByDiscordID(ctx, fromDiscordID)
	if err != nil {
		return err
	}
	recipient, err := s.characters.GetByDiscordID(ctx, toDiscordID)
	if err != nil {
		return err
	}
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.Tradeable {
		return domain.ErrNotTradeable
	}

	defer s.lockCharacterPair(sender.ID, recipient.ID)()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.takeFromCharacterTx(ctx, tx, sender.ID, item, quantity); err != nil {
		return err
	}
	if _, err := s.addToCharacter(ctx, tx, recipient, item, quantity, domain.Provenance{
		Kind:   domain.ProvenanceTrade,
		Source: sender.Name,
		Date:   time.Now(),
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}

	if err := s.bus.Publish(ctx, event.NewItemTradedEvent(sender.ID, recipient.ID, item.ItemID, quantity, 0)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish trade event", "error", err)
	}
	return nil
}

// takeFromCharacterTx removes quantity from the sender's unequipped records
// inside a transaction, spanning stacks under the same rules as RemoveItem.
// Locked and listed copies don't count toward the giftable total.
func (s *service) takeFromCharacterTx(ctx context.Context, tx repository.InventoryTx, characterID string, item *domain.Item, quantity int) error {
	records, err := tx.ListUnequipped(ctx, characterID, item.ItemID)
	if err != nil {
		return err
	}

	giftable := []domain.InventoryRecord{}
	total := 0
	locked := false
	listed := false
	for _, r := range records {
		if r.IsLocked {
			locked = true
			continue
		}
		if r.ForSale {
			listed = true
			continue
		}
		giftable = append(giftable, r)
		total += r.Quantity
	}

	if len(giftable) == 0 {
		if locked {
			return domain.ErrItemLocked
		}
		if listed {
			return domain.ErrNotAvailable
		}
		return domain.ErrItemNotFound
	}
	if total < quantity {
		return domain.ErrInsufficientQuantity
	}

	remaining := quantity
	for i := range giftable {
		if remaining == 0 {
			break
		}
		r := &giftable[i]
		if r.Quantity <= remaining {
			remaining -= r.Quantity
			if err := tx.DeleteRecord(ctx, r.ID); err != nil {
				return err
			}
			continue
		}
		r.Quantity -= remaining
		remaining = 0
		if err := tx.UpdateRecord(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// EquipItem equips a record into its item's slot, displacing whatever was
// there. At most one record per slot stays equipped.
func (s *service) EquipItem(ctx context.Context, discordID, recordID string) (*domain.Character, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	defer s.lockCharacter(character.ID)()

	record, err := s.repo.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.CharacterID != character.ID {
		return nil, domain.ErrItemNotFound
	}
	if record.IsEquipped {
		return character, nil
	}

	item, err := s.catalog.GetByItemID(ctx, record.ItemID)
	if err != nil {
		return nil, err
	}
	if item.EquipSlot == "" {
		return nil, domain.ErrNotEquippable
	}
	if err := checkRequirements(character, item.Requirements); err != nil {
		return nil, err
	}

	if err := s.repo.UnequipSlot(ctx, character.ID, item.EquipSlot); err != nil {
		return nil, err
	}

	record.IsEquipped = true
	record.EquipSlot = item.EquipSlot
	record.ForSale = false
	record.SalePrice = 0
	if err := s.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	character.Equipment.Set(item.EquipSlot, &record.ID)
	if err := s.characters.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// UnequipItem clears a slot
func (s *service) UnequipItem(ctx context.Context, discordID string, slot domain.EquipSlot) (*domain.Character, error) {
	if !slot.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	defer s.lockCharacter(character.ID)()

	if err := s.repo.UnequipSlot(ctx, character.ID, slot); err != nil {
		return nil, err
	}

	character.Equipment.Set(slot, nil)
	if err := s.characters.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// UseItem consumes one unit of a consumable and applies its effects
func (s *service) UseItem(ctx context.Context, discordID, itemID string) (*UseResult, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Type != domain.ItemTypeConsumable || !item.ConsumeOnUse {
		return nil, domain.ErrNotConsumable
	}

	defer s.lockCharacter(character.ID)()

	record, err := s.repo.FindUnequipped(ctx, character.ID, item.ItemID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrItemNotFound
	}
	if record.IsLocked {
		return nil, domain.ErrItemLocked
	}

	result := &UseResult{ItemID: item.ItemID, Consumed: true}
	for _, effect := range item.Effects {
		switch effect.Type {
		case domain.EffectHeal:
			healed := effect.Value
			if character.Stats.HP+healed > character.Stats.MaxHP {
				healed = character.Stats.MaxHP - character.Stats.HP
			}
			character.Stats.HP += healed
			character.GameStats.TotalHealing += healed
			result.HPChange += healed
		case domain.EffectRestoreMP:
			restored := effect.Value
			if character.Stats.MP+restored > character.Stats.MaxMP {
				restored = character.Stats.MaxMP - character.Stats.MP
			}
			character.Stats.MP += restored
			result.MPChange += restored
		case domain.EffectDamage:
			// Self-damage potions floor at 1 HP; a consumable never kills
			dealt := effect.Value
			if dealt >= character.Stats.HP {
				dealt = character.Stats.HP - 1
			}
			if dealt < 0 {
				dealt = 0
			}
			character.Stats.HP -= dealt
			character.GameStats.TotalDamageReceived += dealt
			result.HPChange -= dealt
		}
	}

	if record.Quantity == 1 {
		if err := s.repo.DeleteRecord(ctx, record.ID); err != nil {
			return nil, err
		}
	} else {
		record.Quantity--
		if err := s.repo.UpdateRecord(ctx, record); err != nil {
			return nil, err
		}
	}

	if err := s.characters.Update(ctx, character); err != nil {
		return nil, err
	}
	result.Character = character

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.ItemUsed,
		Payload: map[string]interface{}{"character_id": character.ID, "item_id": item.ItemID},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish item used event", "error", err)
	}
	return result, nil
}

// ListForSale offers a record on the market at a price in galleons
func (s *service) ListForSale(ctx context.Context, discordID, recordID string, price int) error {
	if price <= 0 {
		return domain.ErrInvalidInput
	}

	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return err
	}
	record, err := s.repo.GetRecord(ctx, recordID)
	if err != nil {
		return err
	}
	if record.CharacterID != character.ID {
		return domain.ErrItemNotFound
	}
	if record.IsLocked {
		return domain.ErrItemLocked
	}
	if record.IsEquipped {
		return domain.ErrNotAvailable
	}

	item, err := s.catalog.GetByItemID(ctx, record.ItemID)
	if err != nil {
		return err
	}
	if !item.Tradeable {
		return domain.ErrNotTradeable
	}

	record.ForSale = true
	record.SalePrice = price
	return s.repo.UpdateRecord(ctx, record)
}

// CancelSale withdraws a listing
func (s *service) CancelSale(ctx context.Context, discordID, recordID string) error {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return err
	}
	record, err := s.repo.GetRecord(ctx, recordID)
	if err != nil {
		return err
	}
	if record.CharacterID != character.ID {
		return domain.ErrItemNotFound
	}
	if !record.ForSale {
		return domain.ErrNotAvailable
	}

	record.ForSale = false
	record.SalePrice = 0
	return s.repo.UpdateRecord(ctx, record)
}

// GetMarket lists current offers
func (s *service) GetMarket(ctx context.Context, query repository.MarketQuery) ([]domain.InventoryRecord, error) {
	if query.Limit <= 0 || query.Limit > MaxMarketPageSize {
		query.Limit = DefaultMarketPageSize
	}
	return s.repo.GetMarket(ctx, query)
}

// BuyFromMarket purchases a listed record outright. Galleons move and the
// record changes hands in one transaction; a failure at any step rolls the
// whole purchase back.
func (s *service) BuyFromMarket(ctx context.Context, buyerDiscordID, recordID string) (*PurchaseResult, error) {
	buyer, err := s.characters.GetByDiscordID(ctx, buyerDiscordID)
	if err != nil {
		return nil, err
	}

	defer s.lockCharacter(buyer.ID)()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	record, err := tx.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !record.ForSale {
		return nil, domain.ErrNotAvailable
	}
	if record.CharacterID == buyer.ID {
		return nil, domain.ErrSelfPurchase
	}
	sellerID := record.CharacterID
	price := record.SalePrice

	used, err := tx.CountSlots(ctx, buyer.ID)
	if err != nil {
		return nil, err
	}
	if used >= buyer.InventorySlots {
		return nil, domain.ErrInventoryFull
	}

	if err := tx.AdjustGalleons(ctx, buyer.ID, -price); err != nil {
		return nil, err
	}
	if err := tx.AdjustGalleons(ctx, sellerID, price); err != nil {
		return nil, err
	}

	record.CharacterID = buyer.ID
	record.ForSale = false
	record.SalePrice = 0
	record.ObtainedFrom = domain.Provenance{
		Kind:   domain.ProvenanceShop,
		Source: sellerID,
		Date:   time.Now(),
	}
	if err := tx.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.MarketSold,
		Payload: event.ItemTradedPayloadV1{
			FromCharacterID: sellerID,
			ToCharacterID:   buyer.ID,
			ItemID:          record.ItemID,
			Quantity:        record.Quantity,
			Price:           price,
			Timestamp:       time.Now().Unix(),
		},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish market sale event", "error", err)
	}

	return &PurchaseResult{Record: record, Price: price, SellerID: sellerID}, nil
}

// GetShopItems lists catalog items purchasable at the character's level
func (s *service) GetShopItems(ctx context.Context, discordID string) ([]domain.Item, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetShopItems(ctx, character.Level)
}

// FindHolders reports who holds an item
func (s *service) FindHolders(ctx context.Context, itemID string) ([]repository.ItemHolding, error) {
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindHolders(ctx, item.ItemID)
}

// MostCommonItems tallies server-wide holdings
func (s *service) MostCommonItems(ctx context.Context, limit int) ([]repository.ItemTally, error) {
	if limit <= 0 || limit > MaxMarketPageSize {
		limit = DefaultMarketPageSize
	}
	return s.repo.MostCommonItems(ctx, limit)
}

// GrantToAll gives quantity of an item to every account that has room.
// Returns how many received it; full inventories are skipped, not failed.
func (s *service) GrantToAll(ctx context.Context, itemID string, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return 0, err
	}

	characters, err := s.characters.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	granted := 0
	provenance := domain.Provenance{Kind: domain.ProvenanceGift, Source: "admin", Date: time.Now()}
	for i := range characters {
		c := &characters[i]
		if _, err := s.addToCharacter(ctx, s.repo, c, item, quantity, provenance); err != nil {
			if err == domain.ErrInventoryFull {
				log.Info("Skipping full inventory", "character_id", c.ID)
				continue
			}
			return granted, err
		}
		c.GameStats.ItemsCollected += quantity
		if err := s.characters.Update(ctx, c); err != nil {
			return granted, err
		}
		granted++
	}
	return granted, nil
}

// checkRequirements gates equipping and purchasing against level and house
func checkRequirements(character *domain.Character, req domain.ItemRequirements) error {
	if req.Level > 0 && character.Level < req.Level {
		return domain.ErrRequirementNotMet
	}
	if req.House != "" && character.House != req.House {
		return domain.ErrRequirementNotMet
	}
	return nil
}
