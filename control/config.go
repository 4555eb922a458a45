// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Static ring configuration. The teacher's ConfigStore models dynamic,
// hot-reloadable server settings with a listener/dispatch mechanism; a ring's
// capacity and allocator are fixed for its lifetime (resize is an explicit
// non-goal), so there is nothing to reload. A plain struct validated once at
// construction is the correct idiom here, not a trimmed-down dynamic store.

package control

import "github.com/momentics/bytering/api"

// Config holds the construction-time parameters of a ring.
type Config struct {
	// Name identifies the ring in logs, metrics labels, and debug probes.
	Name string
	// Capacity is the fixed byte capacity C. Must be > 0.
	Capacity int
}

// Validate checks Config for the constraints ringbuf.NewRing requires.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return api.NewError(api.ErrCodeZeroCapacity, api.ErrZeroCapacity.Error()).
			WithContext("capacity", c.Capacity)
	}
	if c.Name == "" {
		return api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument.Error()).
			WithContext("field", "name")
	}
	return nil
}
