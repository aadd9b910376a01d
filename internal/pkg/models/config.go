package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Logger   LoggerConfig
	Presence PresenceConfig
	Location LocationConfig
	Cell     CellConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PresenceConfig contains driver presence cache configuration
type PresenceConfig struct {
	CacheTTLSeconds int
}

// LocationConfig contains position ingestion configuration.
// Samples older than MaxTimestampDelayS or noisier than AccuracyThresholdM
// are dropped before they reach the cache; WindowSize bounds the recency
// window kept per driver.
type LocationConfig struct {
	CacheTTLSeconds    int
	WindowSize         int
	AccuracyThresholdM float64
	MaxSpeedKmh        float64
	MaxTimestampDelayS int64
	ValidationEnabled  bool
}

// CellConfig contains spatial index configuration.
// Precision is the geohash length used for cell ids; SearchNeighbors widens
// proximity queries to the eight adjacent cells.
type CellConfig struct {
	Precision       uint
	CacheTTLSeconds int
	SearchNeighbors bool
}
