package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// FileStore keeps a single best score as decimal text in a file.
// A missing or unreadable file counts as no score.
type FileStore struct {
	path   string
	logger *log.Logger
}

var _ core.HighScoreStore = (*FileStore)(nil)

// NewFileStore returns a store backed by path. The file is created on the
// first Save. A nil logger discards diagnostics.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the stored score as a signed integer. A missing file is not
// an error; garbage in the file yields 0 and the parse error.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		f.logger.Debug("ignoring garbled high score file", "path", f.path)
		return 0, fmt.Errorf("storage: cannot parse %s: %q", f.path, strings.TrimSpace(string(data)))
	}
	return score, nil
}

// Save overwrites the file with score.
func (f *FileStore) Save(score int) error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			f.logger.Debug("cannot create high score directory", "dir", dir, "err", err)
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		f.logger.Debug("cannot write high score", "path", f.path, "err", err)
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	return nil
}
