package inventory

// Market paging limits
const (
	DefaultMarketPageSize = 20
	MaxMarketPageSize     = 50
)
