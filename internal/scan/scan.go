package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"relink/internal/logging"
)

// MB is the number of bytes in a megabyte as used for size thresholds.
const MB = 1024 * 1024

// File is a candidate for duplicate analysis. Inode and Dev are zero when
// the platform cannot supply them.
type File struct {
	Path  string
	Size  int64
	Inode uint64
	Dev   uint64
}

// Walker collects candidate files from one or more root directories.
type Walker struct {
	minBytes int64
	logger   *slog.Logger
}

// NewWalker constructs a walker keeping files of at least minFilesizeMB megabytes.
func NewWalker(minFilesizeMB int64, logger *slog.Logger) *Walker {
	return &Walker{
		minBytes: minFilesizeMB * MB,
		logger:   logging.NewComponentLogger(logger, "scan"),
	}
}

// Walk traverses every root in order and returns the candidate files in
// discovery order. Unreadable entries are logged and skipped; a missing or
// unreadable root is an error.
func (w *Walker) Walk(roots []string) ([]File, error) {
	var files []File
	for _, root := range roots {
		w.logger.Debug("walking directory", logging.String("root", root))
		collected, err := w.walkRoot(root)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}
	return files, nil
}

func (w *Walker) walkRoot(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("walk %s: %w", root, err)
			}
			w.logger.Warn("skipping unreadable entry",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
			)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if isHidden(entry.Name()) && path != root {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			w.logger.Warn("stat failed mid-walk",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
			)
			return nil
		}

		if info.Size() < w.minBytes {
			w.logger.Debug("skipping small file",
				logging.String(logging.FieldPath, path),
				logging.Int64(logging.FieldSize, info.Size()),
			)
			return nil
		}

		inode, dev := statIdentity(info)
		w.logger.Debug("found file", logging.String(logging.FieldPath, path))
		files = append(files, File{Path: path, Size: info.Size(), Inode: inode, Dev: dev})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
