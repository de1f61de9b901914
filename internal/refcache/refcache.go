// Package refcache persists name-to-identifier mappings for remote
// references (lists, labels) and resolves names through them.
//
// Each reference kind has one TOML file mapping lowercased names to
// remote identifiers. There is no TTL: staleness only surfaces as a
// cache miss, which triggers a wholesale refresh from the remote
// source.
package refcache

import (
	"context"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Cache maps lowercased reference names to remote identifiers.
type Cache map[string]string

// Load reads a cache file. A missing or malformed file is an empty
// cache, never an error; the next miss refreshes it.
func Load(path string) Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		return Cache{}
	}
	var raw map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Cache{}
	}
	c := make(Cache, len(raw))
	for name, id := range raw {
		c[strings.ToLower(name)] = id
	}
	return c
}

// Save writes the full mapping as TOML, replacing the file.
func Save(path string, c Cache) error {
	data, err := toml.Marshal(map[string]string(c))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Find resolves a name against the cache. The lowercased name is
// matched exactly first; failing that, the first key it is a prefix
// of wins. Map iteration order decides ties between prefix matches,
// so the winner is not deterministic across runs when several keys
// share the prefix. Known quirk; callers wanting a specific entry
// should use the full name.
func (c Cache) Find(name string) (string, bool) {
	search := strings.ToLower(name)
	if id, ok := c[search]; ok {
		return id, true
	}
	for key, id := range c {
		if strings.HasPrefix(key, search) {
			return id, true
		}
	}
	return "", false
}

// FetchFunc retrieves the complete name-to-identifier mapping from
// the remote source.
type FetchFunc func(ctx context.Context) (map[string]string, error)

// Resolver binds one cache file to the remote source that refreshes
// it. The cache is loaded lazily on first use and replaced wholesale
// on refresh, in memory and on disk.
type Resolver struct {
	path   string
	fetch  FetchFunc
	cache  Cache
	loaded bool
}

// NewResolver creates a resolver over the cache file at path.
func NewResolver(path string, fetch FetchFunc) *Resolver {
	return &Resolver{path: path, fetch: fetch}
}

func (r *Resolver) load() Cache {
	if !r.loaded {
		r.cache = Load(r.path)
		r.loaded = true
	}
	return r.cache
}

// Refresh fetches the mapping wholesale, persists it, and swaps the
// in-memory copy. Incremental updates don't exist; the prior cache is
// discarded entirely.
func (r *Resolver) Refresh(ctx context.Context) error {
	fetched, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	c := make(Cache, len(fetched))
	for name, id := range fetched {
		c[strings.ToLower(name)] = id
	}
	if err := Save(r.path, c); err != nil {
		return err
	}
	r.cache = c
	r.loaded = true
	return nil
}

// Resolve looks name up, refreshing from the remote source on a miss
// and retrying once. A name still unknown after refresh is not an
// error; it resolves to nothing and the caller omits the reference.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool, error) {
	if id, ok := r.load().Find(name); ok {
		return id, true, nil
	}
	if err := r.Refresh(ctx); err != nil {
		return "", false, err
	}
	id, ok := r.cache.Find(name)
	return id, ok, nil
}

// ResolveAll resolves a batch of names with at most one refresh: if
// any name misses in the current cache, the whole mapping is fetched
// once before resolving. Unknown names are omitted from the result;
// resolved identifiers keep input order.
func (r *Resolver) ResolveAll(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	c := r.load()
	for _, name := range names {
		if _, ok := c.Find(name); !ok {
			if err := r.Refresh(ctx); err != nil {
				return nil, err
			}
			break
		}
	}

	var ids []string
	for _, name := range names {
		if id, ok := r.cache.Find(name); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
