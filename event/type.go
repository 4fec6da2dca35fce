package event

// EventType represents the type of world event
type EventType int

const (
	// EventWorldClear signals all entity tables were reset
	// Trigger: World.ClearWorld | Payload: nil
	EventWorldClear EventType = iota

	// EventStickBreak signals a stick was permanently deactivated
	// Trigger: constraint overstretch or explosion | Payload: StickBreakPayload
	EventStickBreak

	// EventExplosion signals a radial impulse was applied
	// Trigger: World.Explode, explosive point reaching the floor | Payload: ExplosionPayload
	EventExplosion

	// EventTargetReached signals a target latch transitioned to touching
	// Trigger: World.UpdateTargets | Payload: TargetPayload
	EventTargetReached

	// EventStateSaved signals a snapshot was written to the undo ring
	// Trigger: World.SaveState | Payload: nil
	EventStateSaved

	// EventUndo signals a snapshot was restored
	// Trigger: World.Undo | Payload: nil
	EventUndo

	// EventSpawn signals a prefab was placed
	// Trigger: scene prefabs | Payload: SpawnPayload
	EventSpawn

	// EventCoinCollected signals the ragdoll picked up a coin
	// Trigger: scene.Builder.CollectCoins | Payload: CoinPayload
	EventCoinCollected
)

var eventNames = map[EventType]string{
	EventWorldClear:    "world_clear",
	EventStickBreak:    "stick_break",
	EventExplosion:     "explosion",
	EventTargetReached: "target_reached",
	EventStateSaved:    "state_saved",
	EventUndo:          "undo",
	EventSpawn:         "spawn",
	EventCoinCollected: "coin_collected",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued event
// Frame is the physics tick the event was raised in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64
}
