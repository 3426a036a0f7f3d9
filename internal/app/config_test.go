package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		quiet      bool
		configPath string
	}{
		{
			name:       "full configuration",
			debug:      true,
			quiet:      true,
			configPath: "/custom/config/path",
		},
		{
			name:       "minimal configuration",
			debug:      false,
			quiet:      false,
			configPath: "",
		},
		{
			name:       "debug only",
			debug:      true,
			quiet:      false,
			configPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.debug, tt.quiet, tt.configPath)

			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Equal(t, tt.quiet, cfg.Quiet)
			assert.Equal(t, tt.configPath, cfg.ConfigPath)
			assert.Nil(t, cfg.NavConfig)
		})
	}
}
