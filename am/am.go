// Package am loads sotkb configuration.
//
// Settings cascade from built-in defaults through /etc/sotkb/am.toml,
// ~/.sotkb/am.toml and the nearest am.toml above the working directory, and
// SOTKB_* environment variables override all files.
package am

// Config represents the sotkb configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database" yaml:"database"`
	Import   ImportConfig   `mapstructure:"import" toml:"import" json:"import" yaml:"import"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// DatabaseConfig configures the SQLite fact store
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" yaml:"path"` // ":memory:" keeps facts in memory only
}

// ImportConfig lists sources imported before every query command
type ImportConfig struct {
	Sources []string `mapstructure:"sources" toml:"sources" json:"sources" yaml:"sources"` // local paths, file:// or remote URLs
}

// OutputConfig configures how query commands render results
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"` // json, yaml or table
}

// LogConfig configures logging
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Output formats
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// OutputFormats lists the accepted output formats
var OutputFormats = []string{FormatJSON, FormatYAML, FormatTable}

const (
	// EnvPrefix prefixes environment overrides, e.g. SOTKB_DATABASE_PATH
	EnvPrefix = "SOTKB"

	// ConfigFileName is the name of every config file in the cascade
	ConfigFileName = "am.toml"

	// DefaultDirPermissions is used when creating the user config directory
	DefaultDirPermissions = 0755
)
