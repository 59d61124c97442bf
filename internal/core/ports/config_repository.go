package ports

import "context"

// ConfigRepository stores boolean configuration flags as independent
// documents keyed by name. Its only consumer is the startup seeder, which
// uses it to remember whether sample data has already been loaded.
type ConfigRepository interface {
	// GetFlag returns the value of the named flag, or false when the flag
	// document does not exist.
	GetFlag(ctx context.Context, key string) (bool, error)

	// SetFlag writes the named flag, creating the document if needed.
	SetFlag(ctx context.Context, key string, value bool) error
}
