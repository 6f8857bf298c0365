package am

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sotkb/errors"
)

// isolate points the config cascade at temp dirs and resets cached state.
func isolate(t *testing.T) (system, user, project string) {
	t.Helper()
	root := t.TempDir()
	system = filepath.Join(root, "etc")
	user = filepath.Join(root, "home")
	project = filepath.Join(root, "project", "nested")
	for _, dir := range []string{system, user, project} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	oldSystem, oldUser := systemConfigDir, userConfigDir
	systemConfigDir = system
	userConfigDir = func() string { return user }
	t.Chdir(project)
	Reset()
	t.Cleanup(func() {
		systemConfigDir, userConfigDir = oldSystem, oldUser
		Reset()
	})
	return system, user, filepath.Dir(project)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Empty(t, cfg.Import.Sources)
	assert.False(t, cfg.Log.JSON)
}

func TestLoad_Cascade(t *testing.T) {
	system, user, project := isolate(t)
	writeConfig(t, system, "[database]\npath = \"/var/lib/sotkb.db\"\n[output]\nformat = \"json\"\n")
	writeConfig(t, user, "[output]\nformat = \"yaml\"\n")
	projectFile := writeConfig(t, project, "[import]\nsources = [\"data/graph.nt\"]\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/sotkb.db", cfg.Database.Path, "system file")
	assert.Equal(t, FormatYAML, cfg.Output.Format, "user file overrides system")
	assert.Equal(t, []string{"data/graph.nt"}, cfg.Import.Sources, "project file found above working directory")

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)

	sources := make(map[string]SettingInfo)
	for _, s := range Settings() {
		sources[s.Key] = s
	}
	assert.Equal(t, SourceSystem, sources["database.path"].Source)
	assert.Equal(t, SourceUser, sources["output.format"].Source)
	assert.Equal(t, SourceProject, sources["import.sources"].Source)
	assert.Equal(t, projectFile, sources["import.sources"].SourcePath)
	assert.Equal(t, SourceDefault, sources["log.json"].Source)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	_, user, _ := isolate(t)
	writeConfig(t, user, "[database]\npath = \"from-file.db\"\n")
	t.Setenv("SOTKB_DATABASE_PATH", ":memory:")
	t.Setenv("SOTKB_LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.True(t, cfg.Log.JSON)

	for _, s := range Settings() {
		if s.Key == "database.path" {
			assert.Equal(t, SourceEnvironment, s.Source)
			assert.Equal(t, "SOTKB_DATABASE_PATH", s.SourcePath)
		}
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	isolate(t)
	t.Setenv("SOTKB_OUTPUT_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	path := writeConfig(t, dir, "[output]\nformat = \"json\"\n")
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)

	_, err = LoadFromFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"zero config is valid", Config{}, false},
		{"table output", Config{Output: OutputConfig{Format: FormatTable}}, false},
		{"unknown output format", Config{Output: OutputConfig{Format: "csv"}}, true},
		{"database path with whitespace", Config{Database: DatabaseConfig{Path: " sotkb.db"}}, true},
		{"empty import source", Config{Import: ImportConfig{Sources: []string{"a.nt", " "}}}, true},
		{"remote import source", Config{Import: ImportConfig{Sources: []string{"https://example.org/graph.nt"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultDatabasePath, cfg.GetDatabasePath())
	assert.Equal(t, DefaultOutputFormat, cfg.GetOutputFormat())

	cfg = &Config{Database: DatabaseConfig{Path: "kb.db"}, Output: OutputConfig{Format: FormatJSON}}
	assert.Equal(t, "kb.db", cfg.GetDatabasePath())
	assert.Equal(t, FormatJSON, cfg.GetOutputFormat())
}

func TestRender(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "kb.db"},
		Import:   ImportConfig{Sources: []string{"graph.nt"}},
		Output:   OutputConfig{Format: FormatTable},
	}

	out, err := cfg.Render("toml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "[database]")
	assert.Contains(t, string(out), "kb.db")

	out, err = cfg.Render(FormatJSON)
	require.NoError(t, err)
	var decoded Config
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, *cfg, decoded)

	out, err = cfg.Render(FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "format: table")

	_, err = cfg.Render("ini")
	assert.True(t, errors.IsInvalidRequestError(err))
}
