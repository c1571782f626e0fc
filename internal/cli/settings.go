// Package cli holds the process settings shared by the terminal and window
// binaries: flags with environment defaults, logging, and storage setup.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

// Environment variables backing the persistent flags.
const (
	EnvFPS       = "FLAPPYFISH_FPS"
	EnvSeed      = "FLAPPYFISH_SEED"
	EnvDB        = "FLAPPYFISH_DB"
	EnvDataDir   = "FLAPPYFISH_DATA_DIR"
	EnvHighScore = "FLAPPYFISH_HIGHSCORE"
	EnvLogFile   = "FLAPPYFISH_LOG_FILE"
	EnvLogLevel  = "FLAPPYFISH_LOG_LEVEL"
)

// Settings are the process-wide options.
type Settings struct {
	FPS       int
	Seed      int64
	DBPath    string
	DataDir   string
	HighScore string // "file" or "db"
	LogFile   string
	LogLevel  string
}

// LoadEnv reads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadEnv() error {
	err := godotenv.Load()
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("cli: cannot load .env: %w", err)
}

// Defaults returns settings taken from the environment, falling back to
// the built-in values.
func Defaults() Settings {
	return Settings{
		FPS:       envInt(EnvFPS, 60),
		Seed:      envInt64(EnvSeed, 0),
		DBPath:    envString(EnvDB, "~/.flappyfish/scores.db"),
		DataDir:   envString(EnvDataDir, "~/.flappyfish"),
		HighScore: envString(EnvHighScore, string(storage.BackendFile)),
		LogFile:   envString(EnvLogFile, ""),
		LogLevel:  envString(EnvLogLevel, "info"),
	}
}

// BindFlags registers the persistent flags on cmd, using the current
// values of s as defaults.
func BindFlags(cmd *cobra.Command, s *Settings) {
	f := cmd.PersistentFlags()
	f.IntVar(&s.FPS, "fps", s.FPS, "Tick rate (frames per second) ["+EnvFPS+"]")
	f.Int64Var(&s.Seed, "seed", s.Seed, "RNG seed (0 = random based on time) ["+EnvSeed+"]")
	f.StringVar(&s.DBPath, "db", s.DBPath, "Path to scores database ["+EnvDB+"]")
	f.StringVar(&s.DataDir, "data-dir", s.DataDir, "Directory for high score files and screenshots ["+EnvDataDir+"]")
	f.StringVar(&s.HighScore, "highscore", s.HighScore, "High score backend: file or db ["+EnvHighScore+"]")
	f.StringVar(&s.LogFile, "log-file", s.LogFile, "Write logs to this file ["+EnvLogFile+"]")
	f.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level: debug, info, warn, error ["+EnvLogLevel+"]")
}

// Runtime builds the runtime config for a w by h screen.
func (s Settings) Runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}
}

// ScreenshotDir is where Ctrl+S drops text screenshots.
func (s Settings) ScreenshotDir() string {
	dir, err := storage.ExpandHome(s.DataDir)
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}

// Logger builds the process logger. When fullscreen is set and no log file
// is configured, output is discarded so it cannot corrupt the alt screen.
// The returned closer releases the log file and is never nil.
func (s Settings) Logger(stderr io.Writer, fullscreen bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("cli: invalid log level %q", s.LogLevel)
	}

	var (
		w                = stderr
		closer io.Closer = io.NopCloser(nil)
	)
	switch {
	case s.LogFile != "":
		path, err := storage.ExpandHome(s.LogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cli: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cli: cannot open log file: %w", err)
		}
		w, closer = f, f
	case fullscreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappyfish",
		Level:           level,
	})
	return logger, closer, nil
}

// OpenStore opens the run history. A failure is logged and yields nil, so
// games still run without persistence.
func (s Settings) OpenStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", s.DBPath, "err", err)
		return nil
	}
	return store
}

// HighScores opens the best score store for gameID. A broken backend is
// logged and replaced by an in-memory store.
func (s Settings) HighScores(gameID string, store *storage.Store, logger *log.Logger) core.HighScoreStore {
	hs, err := storage.OpenHighScores(storage.Backend(s.HighScore), gameID, s.DataDir, store, logger)
	if err != nil {
		logger.Warn("high scores will not persist", "game", gameID, "err", err)
		return nil
	}
	return hs
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(envString(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func envInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(envString(key, ""), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
