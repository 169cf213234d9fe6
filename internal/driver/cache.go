package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when BatchPayload format changes.
const batchCacheSchemaVersion uint16 = 1

// Digest is a sha256 of a batch file's normalized content.
type Digest = [32]byte

// DiskCache stores evaluated batch results keyed by content digest, so an
// unchanged batch file is answered without re-running the pipeline.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// BatchPayload is the serialized form of one batch file's results.
type BatchPayload struct {
	Schema uint16

	Path  string
	Lines []CachedLine
}

// CachedLine mirrors LineResult without the diagnostic bag; failed lines
// keep only the first error code and message.
type CachedLine struct {
	Line    uint32
	Expr    string
	Value   float64
	OK      bool
	Skipped bool
	ErrCode uint16
	ErrMsg  string
}

// OpenDiskCache initializes and returns a disk cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt returns a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "batch", hexKey+".mp")
}

// Put serializes and atomically writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *BatchPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload from the disk cache. A missing entry or a schema
// mismatch is a miss, not an error.
func (c *DiskCache) Get(key Digest, out *BatchPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != batchCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// PayloadFromResults converts line results into a cacheable payload.
func PayloadFromResults(path string, results []LineResult) *BatchPayload {
	payload := &BatchPayload{
		Schema: batchCacheSchemaVersion,
		Path:   path,
		Lines:  make([]CachedLine, 0, len(results)),
	}
	for _, r := range results {
		line := CachedLine{
			Line:    r.Line,
			Expr:    r.Expr,
			Value:   r.Value,
			OK:      r.OK,
			Skipped: r.Skipped(),
		}
		if !r.OK && r.Bag != nil {
			if first, found := r.Bag.FirstError(); found {
				line.ErrCode = uint16(first.Code)
				line.ErrMsg = first.Message
			}
		}
		payload.Lines = append(payload.Lines, line)
	}
	return payload
}
