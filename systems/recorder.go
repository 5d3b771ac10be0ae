package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tracer/constants"
	"github.com/lixenwraith/tracer/engine"
	"github.com/lixenwraith/tracer/status"
)

// RecorderSystem appends one history sample per Live tick
type RecorderSystem struct {
	statRecords *atomic.Int64
}

func NewRecorderSystem(reg *status.Registry) *RecorderSystem {
	return &RecorderSystem{
		statRecords: reg.Ints.Get(status.HistoryRecords),
	}
}

func (rs *RecorderSystem) Priority() int {
	return constants.PriorityRecorder
}

// Update records only when the gate accepted input this tick, replay output is never recorded
func (rs *RecorderSystem) Update(world *engine.World, dt time.Duration) {
	if !world.Intent.Accepting {
		return
	}
	world.History.Record(world.Sample())
	rs.statRecords.Add(1)
}
