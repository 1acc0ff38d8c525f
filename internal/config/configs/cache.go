package configs

import "time"

// Cache configures the in-process campaign snapshot cache. The TTL bounds
// how stale a selection's view of the campaign pool may be; admin writes
// invalidate the snapshot immediately regardless of TTL.
type Cache struct {
	// TTL is how long a campaign snapshot is served before being
	// refreshed from the store.
	TTL time.Duration `env:"TTL" envDefault:"30s"`
}
