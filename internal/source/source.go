// Package source provides raw-data sources for data packages: files on
// disk, entries of an fs.FS such as an embed.FS, and in-memory blocks.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/datapkg/internal/ctxlog"
	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// File reads the content of a file on disk.
func File(path string) datapkg.Source {
	return fileSource{path: path}
}

type fileSource struct{ path string }

func (s fileSource) Raw(ctx context.Context, pkg *datapkg.Package) ([]byte, error) {
	ctxlog.FromContext(ctx).Debug("Reading package data from file.", "package", pkg.Name(), "path", s.path)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, wrapNotFound(pkg, s.path, err)
	}
	return data, nil
}

// FS reads one named entry of fsys. It is the way to back a package with an
// embedded data block.
func FS(fsys fs.FS, name string) datapkg.Source {
	return fsSource{fsys: fsys, name: name}
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Raw(ctx context.Context, pkg *datapkg.Package) ([]byte, error) {
	ctxlog.FromContext(ctx).Debug("Reading package data from embedded filesystem.", "package", pkg.Name(), "name", s.name)
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, wrapNotFound(pkg, s.name, err)
	}
	return data, nil
}

// Bytes serves a fixed in-memory block. A nil block is reported as not found.
func Bytes(b []byte) datapkg.Source {
	return bytesSource(b)
}

type bytesSource []byte

func (s bytesSource) Raw(_ context.Context, pkg *datapkg.Package) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("package %q has no inline data: %w", pkg.Name(), datapkg.ErrNotFound)
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out, nil
}

func wrapNotFound(pkg *datapkg.Package, name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("package %q data %s: %w", pkg.Name(), name, errors.Join(datapkg.ErrNotFound, err))
	}
	return fmt.Errorf("package %q data %s: %w", pkg.Name(), name, err)
}
