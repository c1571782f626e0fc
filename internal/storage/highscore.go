package storage

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Backend selects where best scores live.
type Backend string

const (
	BackendFile Backend = "file"
	BackendDB   Backend = "db"
)

// HighScoreFile returns the flat file name used for a game's best score.
func HighScoreFile(gameID string) string {
	if gameID == "fish" {
		return "flappy_fish_highscore.txt"
	}
	return gameID + "_highscore.txt"
}

// DBHighScores adapts a Store to core.HighScoreStore for one game.
type DBHighScores struct {
	store  *Store
	gameID string
}

var _ core.HighScoreStore = (*DBHighScores)(nil)

// NewDBHighScores returns a high score store for gameID backed by store.
func NewDBHighScores(store *Store, gameID string) *DBHighScores {
	return &DBHighScores{store: store, gameID: gameID}
}

// Load returns the persisted best score.
func (d *DBHighScores) Load() (int, error) {
	return d.store.BestScore(d.gameID)
}

// Save overwrites the persisted best score.
func (d *DBHighScores) Save(score int) error {
	return d.store.SetBestScore(d.gameID, score)
}

// OpenHighScores builds the high score store for a game. The file backend
// lives under dataDir; the db backend needs a non-nil store.
func OpenHighScores(backend Backend, gameID, dataDir string, store *Store, logger *log.Logger) (core.HighScoreStore, error) {
	switch backend {
	case BackendFile, "":
		dir, err := ExpandHome(dataDir)
		if err != nil {
			return nil, err
		}
		return NewFileStore(filepath.Join(dir, HighScoreFile(gameID)), logger), nil
	case BackendDB:
		if store == nil {
			return nil, fmt.Errorf("storage: db high scores need an open database")
		}
		return NewDBHighScores(store, gameID), nil
	default:
		return nil, fmt.Errorf("storage: unknown high score backend %q", backend)
	}
}
