package core

import "time"

// RuntimeConfig contains host-supplied parameters passed to a game at
// initialization. The viewport is the logical arena size in game units;
// hosts scale it to whatever surface they draw on.
type RuntimeConfig struct {
	ViewportW    int           // Arena width in game units
	ViewportH    int           // Arena height in game units
	TickInterval time.Duration // Wall-clock time between ticks
	Seed         int64         // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with the classic 800x600 arena and a
// 20ms tick.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW:    800,
		ViewportH:    600,
		TickInterval: 20 * time.Millisecond,
		Seed:         0,
	}
}

// TicksPerSecond converts the tick interval to a rate, never less than 1.
func (c RuntimeConfig) TicksPerSecond() int {
	if c.TickInterval <= 0 {
		return 1
	}
	tps := int(time.Second / c.TickInterval)
	if tps < 1 {
		return 1
	}
	return tps
}
