package game

// Controls are the player's intents for a single step.
// Fire and StartOrReset are edge-triggered: the input layer sets them
// once per key press, not while the key is held.
type Controls struct {
	MoveLeft     bool
	MoveRight    bool
	Fire         bool
	StartOrReset bool
}
