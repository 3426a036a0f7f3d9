package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile drops a navstack.yaml with the given content into dir.
func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultCatalogDebounce, cfg.Catalog.Debounce)
	require.Len(t, cfg.Containers, 1)
	assert.Equal(t, "screen", cfg.Containers[0].Name)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
logging:
  level: debug
catalog:
  dir: ./catalog
  watch: true
containers:
  - name: screen
    defaultPooling: true
    animation: 150ms
  - name: modal
    lockInteraction: true
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "./catalog", cfg.Catalog.Dir)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, DefaultCatalogDebounce, cfg.Catalog.Debounce,
		"unset debounce keeps the default")

	require.Len(t, cfg.Containers, 2)
	screen := cfg.Containers[0]
	assert.Equal(t, "screen", screen.Name)
	assert.True(t, screen.DefaultPooling)
	assert.Equal(t, 150*time.Millisecond, screen.Animation)
	modal := cfg.Containers[1]
	assert.Equal(t, "modal", modal.Name)
	assert.True(t, modal.LockInteraction)
	assert.False(t, modal.DefaultPooling)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "containers: [broken")

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestLoadConfig_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
containers:
  - name: screen
  - name: screen
`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: Config{Containers: []ContainerConfig{
				{Name: "screen"},
				{Name: "modal", Animation: 100 * time.Millisecond},
			}},
		},
		{
			name:    "no containers",
			cfg:     Config{},
			wantErr: "at least one container",
		},
		{
			name:    "empty name",
			cfg:     Config{Containers: []ContainerConfig{{Name: ""}}},
			wantErr: "empty name",
		},
		{
			name: "duplicate name",
			cfg: Config{Containers: []ContainerConfig{
				{Name: "screen"}, {Name: "screen"},
			}},
			wantErr: "more than once",
		},
		{
			name: "negative animation",
			cfg: Config{Containers: []ContainerConfig{
				{Name: "screen", Animation: -time.Second},
			}},
			wantErr: "negative animation",
		},
		{
			name: "negative debounce",
			cfg: Config{
				Catalog:    CatalogConfig{Debounce: -time.Second},
				Containers: []ContainerConfig{{Name: "screen"}},
			},
			wantErr: "debounce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
