package game

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventShot           EventKind = iota // Player fired a bullet
	EventEnemyDestroyed                  // Enemy health reached zero
	EventPlayerHit                       // Player lost shield or health
	EventPowerUp                         // Player collected a power-up
	EventBossSpawned                     // Boss entered the field
	EventBossExploding                   // Boss health reached zero
	EventBossBurst                       // One burst of the boss explosion
	EventBossDefeated                    // Boss explosion sequence finished
	EventLevelUp                         // Next level started
	EventGameOver                        // Player died
	EventGameClear                       // Final level cleared
	EventStart                           // Run started
	EventReset                           // Session returned to the title screen
)

var eventNames = map[EventKind]string{
	EventShot:           "shot",
	EventEnemyDestroyed: "enemy destroyed",
	EventPlayerHit:      "player hit",
	EventPowerUp:        "power-up",
	EventBossSpawned:    "boss spawned",
	EventBossExploding:  "boss exploding",
	EventBossBurst:      "boss burst",
	EventBossDefeated:   "boss defeated",
	EventLevelUp:        "level up",
	EventGameOver:       "game over",
	EventGameClear:      "game clear",
	EventStart:          "start",
	EventReset:          "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a domain event recorded by a step, positioned where it happened.
type Event struct {
	Kind EventKind
	X, Y float64
}
