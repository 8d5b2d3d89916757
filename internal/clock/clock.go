// Package clock provides the production time source for the marketplace.
package clock

import "time"

// System reads wall-clock time as Unix seconds. It satisfies types.Clock.
type System struct{}

// Now returns the current Unix time in seconds.
func (System) Now() uint64 {
	return uint64(time.Now().Unix())
}
