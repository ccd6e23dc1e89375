// Package source reads protobuf files relative to a base directory.
//
// Files are read once per Resolver: the lines of every file are kept in a
// bounded LRU cache, so an import that is scanned and then generated is only
// read from disk a single time. Cached lines are shared and must not be
// modified by callers.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/platinummonkey/proto2xsd/pkg/protoline"
)

// DefaultBaseDir is the directory inputs and imports are resolved against
const DefaultBaseDir = "./proto2xsd"

// DefaultCacheSize is the number of files kept in memory
const DefaultCacheSize = 128

// ErrNotFound is returned when a file does not exist
var ErrNotFound = errors.New("source file not found")

// Resolver locates and reads protobuf files
type Resolver interface {
	// Resolve returns the filesystem path of name
	Resolve(name string) string
	// Lines returns the significant lines of name
	Lines(ctx context.Context, name string) ([]protoline.Line, error)
}

// FileResolver reads files below a base directory
type FileResolver struct {
	baseDir string
	cache   *lru.Cache[string, []protoline.Line]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewFileResolver creates a resolver rooted at baseDir
func NewFileResolver(baseDir string, cacheSize int) (*FileResolver, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []protoline.Line](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create source cache: %w", err)
	}

	return &FileResolver{
		baseDir: baseDir,
		cache:   cache,
	}, nil
}

// BaseDir returns the directory relative names are resolved against
func (r *FileResolver) BaseDir() string {
	return r.baseDir
}

// Resolve implements Resolver.Resolve. Absolute names are returned unchanged.
func (r *FileResolver) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(r.baseDir, name)
}

// Lines implements Resolver.Lines
func (r *FileResolver) Lines(ctx context.Context, name string) ([]protoline.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.Resolve(name)
	if lines, ok := r.cache.Get(path); ok {
		r.hits.Add(1)
		return lines, nil
	}
	r.misses.Add(1)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := protoline.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	r.cache.Add(path, lines)
	return lines, nil
}

// Stats returns cache hits and misses
func (r *FileResolver) Stats() (hits, misses int64) {
	return r.hits.Load(), r.misses.Load()
}

// Purge drops every cached file so the next read goes to disk
func (r *FileResolver) Purge() {
	r.cache.Purge()
}
