package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".flappyfish"

var logger = log.New(io.Discard)

// SetLogger routes loader diagnostics to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the logger loader diagnostics go to.
func Logger() *log.Logger {
	return logger
}

// CheckFile reports whether path is a usable config for gameID. An empty
// path is always usable since the search path and defaults take over.
func CheckFile(gameID, path string) error {
	if path == "" {
		return nil
	}
	var err error
	switch gameID {
	case "fish":
		_, err = LoadFish(path)
	case "flappy":
		_, err = LoadFlappy(path)
	default:
		return fmt.Errorf("config: no config for game %q", gameID)
	}
	return err
}

// LoadFish loads Flappy Fish configuration.
// Search order: customPath -> ~/.flappyfish/configs/fish.{yaml,toml} ->
// ./configs/fish.{yaml,toml} -> embedded default -> DefaultFishConfig.
func LoadFish(customPath string) (FishConfig, error) {
	return load("fish", customPath, defaultFishYAML, DefaultFishConfig(), FishConfig.Validate)
}

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.flappyfish/configs/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default -> DefaultFlappyConfig.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, defaultFlappyYAML, DefaultFlappyConfig(), FlappyConfig.Validate)
}

// load decodes the first usable file over the hard-coded defaults, so a
// partial file only overrides the keys it names. An explicit customPath
// must be readable and valid; files found by searching are skipped with a
// warning when broken.
func load[T any](id, customPath string, embedded []byte, defaults T, validate func(T) error) (T, error) {
	if customPath != "" {
		cfg := defaults
		if err := decodeFile(customPath, &cfg); err != nil {
			return defaults, err
		}
		if err := validate(cfg); err != nil {
			return defaults, fmt.Errorf("config: %s: %w", customPath, err)
		}
		logger.Debug("loaded config", "game", id, "path", customPath)
		return cfg, nil
	}

	for _, path := range searchPaths(id) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg := defaults
		if err := decodeFile(path, &cfg); err != nil {
			logger.Warn("skipping config", "path", path, "err", err)
			continue
		}
		if err := validate(cfg); err != nil {
			logger.Warn("skipping config", "path", path, "err", err)
			continue
		}
		logger.Debug("loaded config", "game", id, "path", path)
		return cfg, nil
	}

	cfg := defaults
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || validate(cfg) != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile picks the parser from the file extension. Anything that is not
// .toml is read as YAML.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := Decode(path, data, v); err != nil {
		return fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return nil
}

// Decode parses data as TOML or YAML depending on name's extension.
func Decode(name string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// searchPaths lists candidate files for a game, user directory first.
func searchPaths(id string) []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, id+".yaml"),
			filepath.Join(dir, id+".toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", id+".yaml"),
		filepath.Join("configs", id+".toml"),
	)
}

// userConfigDir returns ~/.flappyfish/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs")
}
