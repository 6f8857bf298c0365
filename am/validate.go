package am

import (
	"slices"
	"strings"

	"github.com/teranos/sotkb/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Empty database path falls back to DefaultDatabasePath
	if strings.TrimSpace(c.Database.Path) != c.Database.Path {
		return errors.Newf("database.path has surrounding whitespace: %q", c.Database.Path)
	}

	if c.Output.Format != "" && !slices.Contains(OutputFormats, c.Output.Format) {
		err := errors.Newf("output.format must be one of %s, got %q", strings.Join(OutputFormats, ", "), c.Output.Format)
		return errors.Mark(err, errors.ErrInvalidRequest)
	}

	for i, source := range c.Import.Sources {
		if strings.TrimSpace(source) == "" {
			return errors.Mark(errors.Newf("import.sources[%d] is empty", i), errors.ErrInvalidRequest)
		}
	}

	return nil
}
