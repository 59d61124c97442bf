package memory

import (
	"context"
	"sync"

	"pizzashop/internal/core/ports"
)

// ConfigRepository is an in-memory ConfigRepository implementation.
type ConfigRepository struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewConfigRepository creates an empty in-memory config repository.
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{
		flags: make(map[string]bool),
	}
}

// GetFlag returns the value of the named flag; missing flags read as false.
func (r *ConfigRepository) GetFlag(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.flags[key], nil
}

// SetFlag writes the named flag.
func (r *ConfigRepository) SetFlag(ctx context.Context, key string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flags[key] = value
	return nil
}

var _ ports.ConfigRepository = (*ConfigRepository)(nil)
