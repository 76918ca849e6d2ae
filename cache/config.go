package cache

import (
	"time"

	"github.com/goliatone/go-memoize/internal/cachestore"
)

// Config exposes bounded store configuration options for consumers of the
// cache package.
type Config struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cachestore.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewBoundedStore constructs the capacity and TTL bounded store using the
// provided configuration. Use it when the set of distinct inputs is open
// ended and unbounded growth is not acceptable.
func NewBoundedStore(cfg Config) (Store, error) {
	return cachestore.NewBoundedStore(cfg.toInternal())
}

// NewUnboundedStore constructs the full-history store. It never evicts; the
// cache grows by one entry per distinct key for its whole lifetime.
func NewUnboundedStore() Store {
	return cachestore.NewUnboundedStore()
}

// NewSingleEntryStore constructs a store that retains only the most recent
// (key, value) pair. A lookup hits only when its key equals the immediately
// preceding call's key; any other key replaces the sole entry.
func NewSingleEntryStore() Store {
	return cachestore.NewSingleEntryStore()
}

func (c Config) toInternal() cachestore.Config {
	return cachestore.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cachestore.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
