package main

import (
	"testing"

	"navstack/cmd"
)

func TestVersion(t *testing.T) {
	// Test default version
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}
}

func TestVersionVariable(t *testing.T) {
	tests := []struct {
		name     string
		setValue string
	}{
		{
			name:     "custom version",
			setValue: "v1.0.0",
		},
		{
			name:     "semantic version",
			setValue: "2.3.4-beta.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save original version
			originalVersion := version
			defer func() { version = originalVersion }()

			version = tt.setValue
			cmd.SetVersion(version)

			if cmd.GetVersion() != tt.setValue {
				t.Errorf("Expected version %s, got %s", tt.setValue, cmd.GetVersion())
			}
		})
	}
}
