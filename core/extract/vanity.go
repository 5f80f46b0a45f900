package extract

// VanityCache memoizes vanity-URL to steamID64 resolutions within a single
// job run, so the same author does not trigger a secondary fetch per item.
// It is created by the job, passed into the extraction routine, and dropped
// at job end; it is not safe for concurrent use and does not need to be,
// since jobs are not reentrant.
type VanityCache struct {
	entries map[string]string
}

// NewVanityCache creates an empty cache for one job run.
func NewVanityCache() *VanityCache {
	return &VanityCache{entries: make(map[string]string)}
}

// Lookup returns the cached steamID64 for a vanity URL.
func (c *VanityCache) Lookup(url string) (string, bool) {
	id, ok := c.entries[url]
	return id, ok
}

// Store caches the steamID64 for a vanity URL.
func (c *VanityCache) Store(url, id string) {
	c.entries[url] = id
}

// Len returns the number of cached resolutions.
func (c *VanityCache) Len() int {
	return len(c.entries)
}
