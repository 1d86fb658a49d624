package config

const (
	// Configuration file paths
	ConfigPathItems       = "configs/items.json"
	ConfigPathItemsSchema = "configs/schemas/items.schema.json"
)
