package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jask/hubdash/internal/database"
	"github.com/jask/hubdash/internal/database/repository"
)

// OpenStore migrates and opens the sqlite journal at path.
func OpenStore(path string) (*repository.TransitionRepo, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir journal dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, fmt.Errorf("migrate journal: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	return repository.NewTransitionRepo(db), db, nil
}
