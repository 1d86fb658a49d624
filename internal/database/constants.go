package database

// DefaultMinConnections keeps a couple of warm connections so the first
// request after an idle period does not pay the dial cost.
const DefaultMinConnections = 2

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log messages
const (
	LogMsgConnected = "Connected to the database"
)
