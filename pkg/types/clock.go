package types

// Clock supplies the current time as an unsigned count of seconds. The core
// treats it as monotonic and trusted; wall-clock behavior belongs to the
// integrator. internal/clock.System is the production implementation and
// internal/testutil.Clock the deterministic one.
type Clock interface {
	Now() uint64
}
