package spellbook

// Mastery leaderboard paging limits
const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 50
)
