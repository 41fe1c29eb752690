package workouts

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte = 1024 * 1024

	DefaultSnapshotCacheSize = 10 * megabyte
	DefaultSnapshotCacheTTL  = 60 // seconds

	snapshotChunksKey = "workouts::store::chunks"
)

// SnapshotCache keeps the last loaded workouts store, so consecutive stats
// and chart queries don't hit the database each time.
// freecache drops entries bigger than 1/1024 of its size, so the encoded
// store is split into chunks below that limit.
// Every Invalidate starts a new generation; a store loaded during an older
// generation is never cached.
type SnapshotCache struct {
	cache      *freecache.Cache
	ttlSeconds int
	chunkSize  int

	mu         sync.Mutex
	generation uint64
}

func NewSnapshotCache(sizeBytes, ttlSeconds int) *SnapshotCache {
	if sizeBytes <= 0 {
		sizeBytes = DefaultSnapshotCacheSize
	}
	if ttlSeconds <= 0 {
		ttlSeconds = DefaultSnapshotCacheTTL
	}
	return &SnapshotCache{
		cache:      freecache.NewCache(sizeBytes),
		ttlSeconds: ttlSeconds,
		chunkSize:  sizeBytes / 2048,
	}
}

func (c *SnapshotCache) Get() (Store, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chunksVal, err := c.cache.Get([]byte(snapshotChunksKey))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("snapshot cache get: %s", err)
		}
		return nil, false
	}
	if len(chunksVal) != 8 {
		c.deleteChunks()
		return nil, false
	}
	chunks := int(binary.BigEndian.Uint64(chunksVal))

	var storeBytes []byte
	for i := 0; i < chunks; i++ {
		chunk, err := c.cache.Get(chunkKey(i))
		if err != nil {
			// one chunk evicted, the whole snapshot is gone
			log.Tracef("snapshot cache chunk %d/%d: %s", i, chunks, err)
			c.deleteChunks()
			return nil, false
		}
		storeBytes = append(storeBytes, chunk...)
	}

	var store Store
	if err := json.Unmarshal(storeBytes, &store); err != nil {
		log.Errorf("unmarshal cached workouts snapshot: %s", err)
		c.deleteChunks()
		return nil, false
	}
	if store == nil {
		store = Store{}
	}
	return store, true
}

// Generation identifies the current cache generation. Read it before loading
// the store that is later passed to Set.
func (c *SnapshotCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set caches the store loaded during the given generation. It reports false,
// leaving the cache untouched, when the cache was invalidated since.
func (c *SnapshotCache) Set(store Store, generation uint64) bool {
	storeBytes, err := json.Marshal(store)
	if err != nil {
		log.Errorf("marshal workouts snapshot: %s", err)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		log.Tracef("snapshot from generation %d dropped, current is %d", generation, c.generation)
		return false
	}

	c.deleteChunks()

	chunks := 0
	for start := 0; start < len(storeBytes); start += c.chunkSize {
		end := min(start+c.chunkSize, len(storeBytes))
		if err := c.cache.Set(chunkKey(chunks), storeBytes[start:end], c.ttlSeconds); err != nil {
			log.Warnf("cache workouts snapshot chunk %d (%d bytes total): %s", chunks, len(storeBytes), err)
			c.deleteChunks()
			return false
		}
		chunks++
	}

	chunksVal := make([]byte, 8)
	binary.BigEndian.PutUint64(chunksVal, uint64(chunks))
	if err := c.cache.Set([]byte(snapshotChunksKey), chunksVal, c.ttlSeconds); err != nil {
		log.Warnf("cache workouts snapshot chunks count: %s", err)
		return false
	}
	return true
}

func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.deleteChunks()
}

func (c *SnapshotCache) deleteChunks() {
	chunksVal, err := c.cache.Get([]byte(snapshotChunksKey))
	c.cache.Del([]byte(snapshotChunksKey))
	if err != nil || len(chunksVal) != 8 {
		return
	}
	chunks := int(binary.BigEndian.Uint64(chunksVal))
	for i := 0; i < chunks; i++ {
		c.cache.Del(chunkKey(i))
	}
}

func chunkKey(i int) []byte {
	return []byte(fmt.Sprintf("workouts::store::%d", i))
}
