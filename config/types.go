package config

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port               int      `yaml:"port" validate:"gt=0"`
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins"`
}

// StorageConfig locates the flat-file data directory of the demo server.
type StorageConfig struct {
	DataDir string `yaml:"dataDir" validate:"required"`
}

// LoggingConfig contains logger configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console|json
}

// Endpoints maps entity group -> endpoint name -> URL path.
type Endpoints map[string]map[string]string

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server    ServerConfig  `yaml:"server" validate:"required"`
	Storage   StorageConfig `yaml:"storage"`
	Logging   LoggingConfig `yaml:"logging"`
	Endpoints Endpoints     `yaml:"endpoints"`
}
