package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterExists    = "character already exists"
	ErrMsgCharacterNotFound  = "character not found"
	ErrMsgInvalidHouse       = "invalid house"
	ErrMsgInvalidStat        = "invalid stat"
	ErrMsgInsufficientPoints = "insufficient attribute points"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgItemLocked           = "item is locked"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "inventory is full"
	ErrMsgNotTradeable         = "item is not tradeable"
	ErrMsgNotConsumable        = "item is not consumable"
	ErrMsgNotEquippable        = "item is not equippable"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient galleons"
	ErrMsgSelfPurchase      = "cannot buy your own listing"

	// Gate errors
	ErrMsgRequirementNotMet = "requirement not met"
	ErrMsgNotAvailable      = "not available"

	// Spellbook errors
	ErrMsgSpellNotKnown  = "spell not known"
	ErrMsgSpellNotFound  = "spell not found"
	ErrMsgInsufficientMP = "insufficient mp"

	// Sorting quiz errors
	ErrMsgSessionNotFound = "no active sorting session"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterExists    = errors.New(ErrMsgCharacterExists)
	ErrCharacterNotFound  = errors.New(ErrMsgCharacterNotFound)
	ErrInvalidHouse       = errors.New(ErrMsgInvalidHouse)
	ErrInvalidStat        = errors.New(ErrMsgInvalidStat)
	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrItemLocked           = errors.New(ErrMsgItemLocked)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)
	ErrNotTradeable         = errors.New(ErrMsgNotTradeable)
	ErrNotConsumable        = errors.New(ErrMsgNotConsumable)
	ErrNotEquippable        = errors.New(ErrMsgNotEquippable)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrSelfPurchase      = errors.New(ErrMsgSelfPurchase)

	// Gate errors
	ErrRequirementNotMet = errors.New(ErrMsgRequirementNotMet)
	ErrNotAvailable      = errors.New(ErrMsgNotAvailable)

	// Spellbook errors
	ErrSpellNotKnown  = errors.New(ErrMsgSpellNotKnown)
	ErrSpellNotFound  = errors.New(ErrMsgSpellNotFound)
	ErrInsufficientMP = errors.New(ErrMsgInsufficientMP)

	// Sorting quiz errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
