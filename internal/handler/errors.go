package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidQuantity   = "Quantity must be positive"

	// Character operation error messages
	ErrMsgCreateCharacterFailed = "Failed to create character"
	ErrMsgGetCharacterFailed    = "Failed to get character"
	ErrMsgDeleteCharacterFailed = "Failed to delete character"
	ErrMsgGrantExperienceFailed = "Failed to grant experience"
	ErrMsgAssignPointsFailed    = "Failed to assign attribute points"
	ErrMsgRestFailed            = "Failed to rest"
	ErrMsgGetLeaderboardFailed  = "Failed to retrieve leaderboard"

	// Inventory operation error messages
	ErrMsgAddItemFailed      = "Failed to add item"
	ErrMsgRemoveItemFailed   = "Failed to remove item"
	ErrMsgGiveItemFailed     = "Failed to give item"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgUseItemFailed      = "Failed to use item"
	ErrMsgEquipItemFailed    = "Failed to equip item"
	ErrMsgUnequipItemFailed  = "Failed to unequip item"

	// Market operation error messages
	ErrMsgListItemFailed   = "Failed to list item for sale"
	ErrMsgCancelSaleFailed = "Failed to cancel sale"
	ErrMsgGetMarketFailed  = "Failed to get market listings"
	ErrMsgBuyItemFailed    = "Failed to buy item"
	ErrMsgGetShopFailed    = "Failed to get shop items"

	// Spellbook operation error messages
	ErrMsgLearnSpellFailed   = "Failed to learn spell"
	ErrMsgCastSpellFailed    = "Failed to cast spell"
	ErrMsgGetSpellbookFailed = "Failed to get spellbook"

	// World artifact operation error messages
	ErrMsgClaimArtifactFailed    = "Failed to claim artifact"
	ErrMsgTransferArtifactFailed = "Failed to transfer artifact"
	ErrMsgLoseArtifactFailed     = "Failed to lose artifact"
	ErrMsgGetArtifactsFailed     = "Failed to get artifacts"

	// Sorting quiz error messages
	ErrMsgStartQuizFailed  = "Failed to start sorting quiz"
	ErrMsgAnswerQuizFailed = "Failed to answer sorting question"
	ErrMsgCancelQuizFailed = "Failed to cancel sorting quiz"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgItemAddedSuccess       = "Item added successfully"
	MsgItemRemovedSuccess     = "Item removed successfully"
	MsgItemTransferredSuccess = "Item transferred successfully"
	MsgItemListedSuccess      = "Item listed for sale"
	MsgSaleCancelledSuccess   = "Sale cancelled"
	MsgSpellLearnedSuccess    = "Spell learned successfully"
	MsgCharacterDeleted       = "Character deleted"
	MsgQuizCancelled          = "Sorting quiz cancelled"
	MsgItemsGrantedFormat     = "Item granted to %d characters"
)
