// Package receipt keeps copies of receipt images in a directory owned by the
// tracker. A transaction stores only the path of its copy.
package receipt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// ErrPhotoCopyFailed wraps every failure to copy a receipt into the store.
var ErrPhotoCopyFailed = errors.New("photo copy failed")

type Store struct {
	dir    string
	logger *logrus.Logger
}

// NewStore creates dir if needed. Stored paths are absolute so they stay
// valid when the process starts from another working directory.
func NewStore(dir string, logger *logrus.Logger) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve photo dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &Store{dir: abs, logger: logger}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save copies src into the store under a new unique name and returns the
// stored path. Both file handles are closed before Save returns.
func (s *Store) Save(src string) (string, error) {
	stored, size, err := s.copyFile(src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPhotoCopyFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"source": src,
		"stored": stored,
		"size":   humanize.Bytes(uint64(size)),
	}).Info("Receipt.Save.copied")
	return stored, nil
}

func (s *Store) copyFile(src string) (string, int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", 0, err
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%s is a directory", src)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", 0, err
	}
	dst := filepath.Join(s.dir, id.String()+strings.ToLower(filepath.Ext(src)))

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", 0, err
	}
	return dst, n, nil
}

// Remove deletes a stored copy. Paths outside the store are refused.
func (s *Store) Remove(path string) error {
	if filepath.Dir(path) != s.dir {
		return fmt.Errorf("%s is not in the photo store", path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
