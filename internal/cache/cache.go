// Package cache is a size-bounded LRU cache for rendered note previews.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"sync"
)

var ErrTooLarge = errors.New("entry exceeds cache capacity")

type Entry struct {
	Key   string
	Value string
}

// Cache evicts least recently used entries once the summed size of keys and
// values passes the configured limit.
type Cache struct {
	mu        sync.Mutex
	maxBytes  int64
	size      int64
	evictList *list.List
	items     map[string]*list.Element
}

func New(maxMB int64) (*Cache, error) {
	if maxMB <= 0 {
		return nil, fmt.Errorf("invalid cache size %dMB", maxMB)
	}
	return &Cache{
		maxBytes:  maxMB * 1024 * 1024,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}, nil
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*Entry).Value, true
	}
	return "", false
}

func (c *Cache) Put(key, value string) error {
	e := &Entry{Key: key, Value: value}
	n := sizeof(e)
	if n > c.maxBytes {
		return ErrTooLarge
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[key]; hit {
		c.size -= sizeof(ele.Value.(*Entry))
		ele.Value = e
		c.size += n
		c.evictList.MoveToFront(ele)
	} else {
		c.items[key] = c.evictList.PushFront(e)
		c.size += n
	}

	for c.size > c.maxBytes {
		c.removeOldest()
	}
	return nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// SizeOf returns the bytes currently held.
func (c *Cache) SizeOf() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *Cache) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*Entry)
	delete(c.items, kv.Key)
	c.size -= sizeof(kv)
}

func sizeof(e *Entry) int64 {
	return int64(len(e.Key) + len(e.Value))
}

// Key builds a cache key for content rendered with style at width.
func Key(style string, width int, content string) string {
	sum := sha256.Sum256([]byte(content))
	return style + ":" + strconv.Itoa(width) + ":" + hex.EncodeToString(sum[:])
}
