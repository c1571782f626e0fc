package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPlayRejectsBadCommandLine(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "typo.toml")

	tests := []struct {
		name   string
		game   string
		config string
		errHas string
	}{
		{"unknown game", "pong", "", "unknown game"},
		{"unreadable fish config", "fish", missing, "typo.toml"},
		{"unreadable flappy config", "flappy", missing, "typo.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig = tt.config
			t.Cleanup(func() { flagConfig = "" })

			err := runPlay(playCmd, []string{tt.game})
			if err == nil || !strings.Contains(err.Error(), tt.errHas) {
				t.Errorf("runPlay(%s) = %v, expected an error mentioning %q", tt.game, err, tt.errHas)
			}
		})
	}
}
