package core

// Event is a discrete named occurrence inside a simulation tick.
// Events are consumed fire-and-forget by external collaborators (audio
// feedback, logging); the simulation never observes a response.
type Event string

const (
	EventWallBounce       Event = "wall_bounce"
	EventPaddleBounce     Event = "paddle_bounce"
	EventBrickHit         Event = "brick_hit"
	EventBrickDestroyed   Event = "brick_destroyed"
	EventPowerUpSpawned   Event = "powerup_spawned"
	EventPowerUpCollected Event = "powerup_collected"
	EventPowerUpExpired   Event = "powerup_expired"
	EventBallCaught       Event = "ball_caught"
	EventBallLaunched     Event = "ball_launched"
	EventLifeLost         Event = "life_lost"
	EventLevelClear       Event = "level_clear"
	EventGameOver         Event = "game_over"
	EventShotFired        Event = "shot_fired"
	EventEnemyDestroyed   Event = "enemy_destroyed"
	EventFoodEaten        Event = "food_eaten"
	EventCellRevealed     Event = "cell_revealed"
	EventMineTripped      Event = "mine_tripped"
)

// EventSink receives simulation events. Implementations must not block:
// the sink is called from the tick loop and the simulation does not wait
// on or react to anything the sink does.
type EventSink interface {
	Emit(e Event)
}

// NopSink discards all events. Used when no feedback collaborator is
// attached (tests, headless runs).
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(Event) {}

// SinkFunc adapts a function to the EventSink interface.
type SinkFunc func(Event)

// Emit implements EventSink.
func (f SinkFunc) Emit(e Event) {
	f(e)
}
