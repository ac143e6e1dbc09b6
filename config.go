package treap

import (
	"fmt"

	"github.com/npillmayer/treap/prio"
)

// Config configures a treap.
type Config struct {
	// Priorities supplies node priorities. If nil, a source is created from Seed.
	Priorities prio.Source
	// Seed seeds the default priority source. A zero seed selects a random one.
	// Seed must not be set together with Priorities.
	Seed uint64
}

func (cfg Config) normalized() Config {
	if cfg.Priorities == nil {
		if cfg.Seed == 0 {
			cfg.Priorities = prio.Default()
		} else {
			cfg.Priorities = prio.NewSource(cfg.Seed)
		}
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Priorities != nil && cfg.Seed != 0 {
		return fmt.Errorf("%w: seed given together with a priority source", ErrInvalidConfig)
	}
	return nil
}
