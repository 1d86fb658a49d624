package character

import "time"

// Cache configuration
const (
	CacheSize = 1024
	CacheTTL  = 5 * time.Minute
)

// StartingLocation is where every new character begins
const StartingLocation = "Hogwarts"

// Leaderboard size bounds
const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 50
)
