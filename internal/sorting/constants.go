package sorting

import "time"

// Session lifecycle
const (
	SessionTTL    = 10 * time.Minute
	SweepInterval = time.Minute
)

// Error message string constants
const (
	ErrMsgSessionExists = "a sorting session is already active"
	ErrMsgInvalidOption = "invalid option"

	LogMsgSessionSwept      = "Swept expired sorting session"
	LogMsgSortingCompleted  = "Sorting quiz completed"
	LogMsgFailedPublishSort = "Failed to publish sorting completed event"
)
