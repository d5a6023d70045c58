// Package artifact enumerates the product plan files once. Documents and
// JSON payloads are held in memory; images and the export archive are
// recorded by size and read from the tree on demand. The Index is an
// explicit value so callers can build it from a real tree (Load) or from a
// literal map in tests (NewIndex).
package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Index maps logical slash-separated paths to file contents.
type Index struct {
	entries map[string]entry
	paths   []string
	fsys    fs.FS
}

// entry is one artifact. data is nil for lazy entries, which are read
// from fsys by path.
type entry struct {
	data []byte
	size int64
	lazy bool
}

// NewIndex builds an in-memory index from path -> content. Leading slashes
// are stripped so "/product/x.md" and "product/x.md" name the same artifact.
func NewIndex(files map[string][]byte) *Index {
	entries := make(map[string]entry, len(files))
	for p, data := range files {
		entries[p] = entry{data: data, size: int64(len(data))}
	}
	return newIndex(entries, nil)
}

func newIndex(entries map[string]entry, fsys fs.FS) *Index {
	idx := &Index{entries: make(map[string]entry, len(entries)), fsys: fsys}
	for p, e := range entries {
		p = cleanPath(p)
		if p == "" {
			continue
		}
		idx.entries[p] = e
	}
	idx.paths = make([]string, 0, len(idx.entries))
	for p := range idx.entries {
		idx.paths = append(idx.paths, p)
	}
	sort.Strings(idx.paths)
	return idx
}

// lazyExts are served from the tree rather than held in memory.
var lazyExts = map[string]bool{
	".png": true,
	".zip": true,
}

// Load walks the conventional subtrees of fsys and keeps every file that
// matches one of patterns. Missing subtrees are skipped. Unreadable files
// are logged and skipped.
func Load(fsys fs.FS, patterns []string, log *slog.Logger) (*Index, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p, err)
		}
		matchers = append(matchers, g)
	}
	matches := func(p string) bool {
		for _, g := range matchers {
			if g.Match(p) {
				return true
			}
		}
		return false
	}

	entries := make(map[string]entry)
	for _, root := range walkRoots {
		err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) && p == root {
					return fs.SkipDir
				}
				return err
			}
			if d.IsDir() || !matches(p) {
				return nil
			}
			if lazyExts[strings.ToLower(path.Ext(p))] {
				info, err := d.Info()
				if err != nil {
					log.Warn("skipping unreadable artifact", "path", p, "error", err)
					return nil
				}
				entries[p] = entry{size: info.Size(), lazy: true}
				return nil
			}
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				log.Warn("skipping unreadable artifact", "path", p, "error", err)
				return nil
			}
			entries[p] = entry{data: data, size: int64(len(data))}
			return nil
		})
		if err != nil && !errors.Is(err, fs.SkipDir) {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	idx := newIndex(entries, fsys)
	log.Info("indexed artifacts", "count", len(idx.paths))
	return idx, nil
}

// Has reports whether an artifact exists at p.
func (i *Index) Has(p string) bool {
	_, ok := i.entries[cleanPath(p)]
	return ok
}

// Size returns the byte size recorded for p at index time.
func (i *Index) Size(p string) (int64, bool) {
	e, ok := i.entries[cleanPath(p)]
	return e.size, ok
}

// Get returns the content at p. Lazy entries are read from the tree; a
// read failure reports the artifact as absent.
func (i *Index) Get(p string) ([]byte, bool) {
	p = cleanPath(p)
	e, ok := i.entries[p]
	if !ok {
		return nil, false
	}
	if !e.lazy {
		return e.data, true
	}
	data, err := fs.ReadFile(i.fsys, p)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Open returns a reader over the content at p without buffering lazy
// entries. The caller closes it.
func (i *Index) Open(p string) (io.ReadCloser, error) {
	p = cleanPath(p)
	e, ok := i.entries[p]
	if !ok {
		return nil, fs.ErrNotExist
	}
	if !e.lazy {
		return io.NopCloser(bytes.NewReader(e.data)), nil
	}
	return i.fsys.Open(p)
}

// Text returns the content at p as a string.
func (i *Index) Text(p string) (string, bool) {
	data, ok := i.Get(p)
	return string(data), ok
}

// Paths returns every indexed path in lexical order.
func (i *Index) Paths() []string {
	return append([]string(nil), i.paths...)
}

// Glob returns the indexed paths matching pattern in lexical order.
// "*" does not cross a "/".
func (i *Index) Glob(pattern string) []string {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil
	}
	var out []string
	for _, p := range i.paths {
		if g.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Under returns the paths matching pattern that sit directly inside dir.
func (i *Index) Under(pattern, dir string) []string {
	dir = strings.TrimSuffix(cleanPath(dir), "/")
	var out []string
	for _, p := range i.Glob(pattern) {
		if path.Dir(p) == dir {
			out = append(out, p)
		}
	}
	return out
}

func cleanPath(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "." {
		return ""
	}
	return p
}
