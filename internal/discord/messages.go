package discord

// Friendly message constants for Discord responses
const (
	// Characters
	MsgCharacterNotFound = "👤 **No Character Found**\nPut on the Sorting Hat first with `/sorting`."
	MsgCharacterExists   = "🎓 **Already Sorted**\nYou already belong to a house. The Hat does not change its mind."

	// Economy
	MsgInsufficientGalleons = "💰 **Not Enough Galleons!**\nYour vault at Gringotts is looking rather empty."

	// Items & Inventory
	MsgItemNotFound  = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgInventoryFull = "🎒 **Trunk Full**\nYou're carrying too much stuff!"

	// Spells
	MsgSpellNotFound     = "📖 **Unknown Spell**\nThat incantation appears in no grimoire."
	MsgSpellNotKnown     = "📖 **Spell Not Learned**\nStudy it first with `/learn`."
	MsgNotEnoughMP       = "✨ **Not Enough Magic**\nRest up before casting again."
	MsgRequirementNotMet = "🔒 **Requirement Not Met**\nYou're not ready for that yet."

	// Sorting quiz
	MsgNoQuizActive = "🎩 **No Quiz In Progress**\nStart one with `/sorting`."

	MsgGenericError = "❌ Something went wrong."
)
