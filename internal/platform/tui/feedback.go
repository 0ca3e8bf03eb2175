package tui

import (
	"github.com/charmbracelet/log"

	"github.com/devpulse/arcade/internal/core"
)

// FeedbackSink consumes simulation events for audible/visible feedback.
// It is strictly fire-and-forget: the game loop never waits on it and
// never sees a response, so a slow or broken sink cannot affect the
// simulation.
//
// In a terminal the only portable audio primitive is the bell, so major
// events ring it; everything else is traced at debug level for tuning.
type FeedbackSink struct {
	logger *log.Logger
	bell   func()
}

// NewFeedbackSink creates a sink logging through the given logger. The
// bell callback is invoked for impactful events; pass nil to disable.
func NewFeedbackSink(logger *log.Logger, bell func()) *FeedbackSink {
	return &FeedbackSink{logger: logger, bell: bell}
}

// Emit implements core.EventSink.
func (f *FeedbackSink) Emit(e core.Event) {
	if f.logger != nil {
		f.logger.Debug("game event", "event", string(e))
	}
	if f.bell == nil {
		return
	}
	switch e {
	case core.EventBrickDestroyed, core.EventEnemyDestroyed,
		core.EventPowerUpCollected, core.EventLifeLost,
		core.EventLevelClear, core.EventGameOver, core.EventMineTripped:
		f.bell()
	}
}
