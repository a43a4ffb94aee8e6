package catalog

import "sync"

// cache memoizes raw response bodies keyed by the fully-formed request URL.
// The same query recurs across variant generation and across folders, so one
// run only pays for each distinct request once. Entries live for the lifetime
// of the client; nothing is persisted.
type cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newCache() *cache {
	return &cache{entries: make(map[string][]byte)}
}

func (c *cache) get(url string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	body, ok := c.entries[url]
	return body, ok
}

func (c *cache) set(url string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[url] = body
}
