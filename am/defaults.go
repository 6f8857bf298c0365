package am

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultDatabasePath = "sotkb.db"
	DefaultOutputFormat = FormatTable
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("import.sources", []string{})
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("log.json", false)
}

// GetDatabasePath returns the configured database path
func (c *Config) GetDatabasePath() string {
	if c.Database.Path == "" {
		return DefaultDatabasePath
	}
	return c.Database.Path
}

// GetOutputFormat returns the configured output format
func (c *Config) GetOutputFormat() string {
	if c.Output.Format == "" {
		return DefaultOutputFormat
	}
	return c.Output.Format
}
