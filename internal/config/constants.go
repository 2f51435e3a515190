package config

// Defaults
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultVersion       = "dev"
	DefaultPlanCacheSize = 256

	// Configuration file paths
	DefaultDataPath   = "configs/gamedata.json"
	DefaultSchemaPath = "configs/schemas/gamedata.schema.json"
)
