package sqlq

import (
	"fmt"
	"sync/atomic"
)

// BuildStats holds statement construction statistics. A single
// BuildStats value may be shared by multiple Query factories; all
// counters are safe for concurrent use.
type BuildStats struct {
	// Inserts is the number of INSERT statements created.
	Inserts atomic.Int64
	// Selects is the number of SELECT statements created.
	Selects atomic.Int64
	// Updates is the number of UPDATE statements created.
	Updates atomic.Int64
	// Deletes is the number of DELETE statements created.
	Deletes atomic.Int64
	// Renders is the number of completed ToSQL renders.
	Renders atomic.Int64
}

// Snapshot returns a point-in-time copy of the statistics.
func (s *BuildStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Inserts: s.Inserts.Load(),
		Selects: s.Selects.Load(),
		Updates: s.Updates.Load(),
		Deletes: s.Deletes.Load(),
		Renders: s.Renders.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *BuildStats) Reset() {
	s.Inserts.Store(0)
	s.Selects.Store(0)
	s.Updates.Store(0)
	s.Deletes.Store(0)
	s.Renders.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of statement statistics.
type StatsSnapshot struct {
	Inserts int64
	Selects int64
	Updates int64
	Deletes int64
	Renders int64
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"inserts=%d selects=%d updates=%d deletes=%d renders=%d",
		s.Inserts, s.Selects, s.Updates, s.Deletes, s.Renders,
	)
}
