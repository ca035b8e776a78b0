// Package store persists generated documents: a local run directory by
// default, optionally an S3 bucket, plus a compressed batch manifest.
package store

import (
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// LocalStore writes documents into a single output directory.
// Last writer wins on a filename collision.
type LocalStore struct {
	Dir string
}

// NewLocal ensures dir exists and returns a store rooted there.
func NewLocal(dir string) (store *LocalStore, e *xerr.Error) {
	if err := os.MkdirAll(dir, 0o775); err != nil {
		e = xerr.NewError(err, "create output directory", dir)
		return
	}
	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) Save(name string, data []byte) *xerr.Error {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return xerr.NewError(err, "write generated document", path)
	}
	tl.Log(tl.Verbose, palette.CyanDim, "Wrote '%d' bytes to '%s'", len(data), path)
	return nil
}

// Path returns the absolute location of a previously saved document.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.Dir, name)
}
