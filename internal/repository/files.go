package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

const (
	recordExt = ".json"
	sgfExt    = ".sgf"
)

// FileStore finds json records on disk and writes the sgf next to each one.
type FileStore struct {
	log         *zap.SugaredLogger
	followLinks bool
}

func NewFileStore(log *zap.SugaredLogger, followLinks bool) *FileStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &FileStore{
		log:         log,
		followLinks: followLinks,
	}
}

// Walk calls fn for every *.json file under root. Directory links are followed
// when followLinks is set; each resolved directory is entered once.
func (fs *FileStore) Walk(ctx context.Context, root string, fn func(path string) error) error {
	visited := make(map[string]struct{})
	return fs.walkDir(ctx, root, visited, fn)
}

func (fs *FileStore) walkDir(ctx context.Context, dir string, visited map[string]struct{}, fn func(path string) error) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return err
	}
	if _, ok := visited[resolved]; ok {
		return nil
	}
	visited[resolved] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())
		isDir := entry.IsDir()
		isFile := entry.Type().IsRegular()

		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				fs.log.Warnw("broken link", "path", path, "error", err)
				continue
			}
			isFile = info.Mode().IsRegular()
			isDir = info.IsDir() && fs.followLinks
		}

		switch {
		case isDir:
			if err := fs.walkDir(ctx, path, visited, fn); err != nil {
				if ctx.Err() != nil {
					return err
				}
				fs.log.Errorw("failed to read directory", "path", path, "error", err)
			}
		case isFile && strings.HasSuffix(entry.Name(), recordExt):
			if err := fn(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (fs *FileStore) ReadRecord(path string) (ogs.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ogs.Record{}, fmt.Errorf("%w %s: %w", apperrors.ErrReadRecord, path, err)
	}
	rec, err := ogs.Parse(data)
	if err != nil {
		return ogs.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func (fs *FileStore) WriteSGF(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", apperrors.ErrWriteSGF, path, err)
	}
	return nil
}

// OutputPath swaps the .json extension for .sgf.
func (fs *FileStore) OutputPath(path string) string {
	return strings.TrimSuffix(path, recordExt) + sgfExt
}
