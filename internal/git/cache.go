package git

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// MessageCache memoizes commit subject lines across runs. Commit messages
// are immutable for a given id, so entries never expire; the cache is
// trimmed by size instead.
type MessageCache struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
	dirty   bool
}

// maxCachedMessages caps the on-disk cache size.
const maxCachedMessages = 2000

type messageCacheFile struct {
	Messages  map[string]string `json:"messages"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// messageCachePath returns the cache file path for the given repo root.
func messageCachePath(repoRoot string) string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	safeKey := filepath.Base(repoRoot)
	return filepath.Join(cacheDir, "git-smart-checkout", safeKey+".json")
}

// OpenMessageCache loads the commit-message cache for a repository root.
// A missing or unreadable cache file yields an empty cache.
func OpenMessageCache(repoRoot string) *MessageCache {
	return openMessageCacheAt(messageCachePath(repoRoot))
}

func openMessageCacheAt(path string) *MessageCache {
	mc := &MessageCache{path: path, entries: make(map[string]string)}

	// Shared (read) lock - blocks if an exclusive lock is held
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return mc
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return mc
	}
	var file messageCacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return mc
	}
	if file.Messages != nil {
		mc.entries = file.Messages
	}
	return mc
}

// Get returns the cached subject for a commit id.
func (mc *MessageCache) Get(commitID string) (string, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	msg, ok := mc.entries[commitID]
	return msg, ok
}

// Put records the subject for a commit id.
func (mc *MessageCache) Put(commitID, message string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if cur, ok := mc.entries[commitID]; ok && cur == message {
		return
	}
	mc.entries[commitID] = message
	mc.dirty = true
}

// Len returns the number of cached messages.
func (mc *MessageCache) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.entries)
}

// Save writes the cache back to disk if anything changed.
func (mc *MessageCache) Save() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if !mc.dirty {
		return nil
	}

	entries := mc.entries
	if len(entries) > maxCachedMessages {
		// Any retained subset is valid; eviction order doesn't matter.
		trimmed := make(map[string]string, maxCachedMessages)
		for id, msg := range entries {
			trimmed[id] = msg
			if len(trimmed) == maxCachedMessages {
				break
			}
		}
		entries = trimmed
	}

	data, err := json.Marshal(messageCacheFile{
		Messages:  entries,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(mc.path), 0700); err != nil {
		return err
	}

	// Acquire exclusive lock - blocks until lock is available
	fileLock := flock.New(mc.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := mc.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, mc.path); err != nil {
		return err
	}
	mc.dirty = false
	return nil
}
