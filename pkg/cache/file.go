package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores render entries as files in a directory, each wrapped
// with its content type and expiration. Keys are hashed into a sharded
// layout so one directory never accumulates every render.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk form of a cached render.
type fileEntry struct {
	Data        []byte    `json:"data"`
	ContentType string    `json:"content_type,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Get retrieves a render from the cache.
func (c *FileCache) Get(ctx context.Context, key string) (Entry, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	var stored fileEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		// Unreadable entry - treat as miss
		_ = os.Remove(path)
		return Entry{}, false, nil
	}

	if !stored.ExpiresAt.IsZero() && time.Now().After(stored.ExpiresAt) {
		_ = os.Remove(path)
		return Entry{}, false, nil
	}

	return Entry{Data: stored.Data, ContentType: stored.ContentType}, true, nil
}

// Set stores a render in the cache.
func (c *FileCache) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	stored := fileEntry{
		Data:        e.Data,
		ContentType: e.ContentType,
	}
	if ttl > 0 {
		stored.ExpiresAt = time.Now().Add(ttl)
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Delete removes a render from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to a file path.
// The first 2 hash chars become a subdirectory for distribution.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	subdir := hash[:2]
	filename := hash[2:] + ".json"
	return filepath.Join(c.dir, subdir, filename)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
