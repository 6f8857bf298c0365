package am

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sotkb/errors"
)

// Render formats the configuration as toml, json or yaml.
func (c *Config) Render(format string) ([]byte, error) {
	switch format {
	case "toml", "":
		return toml.Marshal(c)
	case FormatJSON:
		return json.MarshalIndent(c, "", "  ")
	case FormatYAML:
		return yaml.Marshal(c)
	default:
		return nil, errors.NewInvalidRequestError("unknown config format %q (use toml, json or yaml)", format)
	}
}
