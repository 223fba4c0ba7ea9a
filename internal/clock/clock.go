package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns the current time truncated to seconds in UTC, as stored in
// project files.
func Now() time.Time { return NowFunc().UTC().Truncate(time.Second) }
