// Package fs stores published pages in a local directory, mirroring the
// layout of the remote repository.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fwojciec/jobpage"
)

// Ensure Repository implements jobpage.Repository at compile time.
var _ jobpage.Repository = (*Repository)(nil)

// Repository keeps published files flat in one directory. The target's
// repository and branch are ignored; the directory stands in for both.
type Repository struct {
	dir string
}

// NewRepository creates a new Repository rooted at dir.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// ListFiles returns the names of regular files in the directory, sorted.
// A missing directory has no files.
func (r *Repository) ListFiles(ctx context.Context, target jobpage.Target) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) != ".tmp" {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// ReadFile returns the content of name.
// Returns ENOTFOUND if the file does not exist.
func (r *Repository) ReadFile(ctx context.Context, target jobpage.Target, name string) (string, error) {
	path, err := r.path(name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", jobpage.Errorf(jobpage.ENOTFOUND, "file %s not found", name)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// LastModified returns the modification time of name.
// Returns ENOTFOUND if the file does not exist.
func (r *Repository) LastModified(ctx context.Context, target jobpage.Target, name string) (time.Time, error) {
	path, err := r.path(name)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, jobpage.Errorf(jobpage.ENOTFOUND, "file %s not found", name)
	} else if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// WriteFile writes content to name. The content goes to a temporary file
// first and is renamed into place, so readers never see a partial page.
func (r *Repository) WriteFile(ctx context.Context, target jobpage.Target, name, content string) error {
	path, err := r.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// path resolves name inside the directory. Names must be plain file names.
func (r *Repository) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", jobpage.Errorf(jobpage.EINVALID, "invalid file name %q", name)
	}
	return filepath.Join(r.dir, name), nil
}
