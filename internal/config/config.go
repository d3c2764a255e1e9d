package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig contains all storage-related configuration settings.
//
// Driver selects the backend: "memory" (default, volatile) or "postgres".
// DatabaseURL is required when Driver is "postgres". SeedPath optionally
// names a JSON file of book records loaded into the store at startup; when
// empty, the store starts empty.
type StoreConfig struct {
	Driver      string `mapstructure:"driver"       validate:"required,oneof=memory postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"omitempty,url"`
	SeedPath    string `mapstructure:"seed_path"`
}
