// internal/event/types.go
package event

const (
	EnemyDeath   EventType = "enemy_death"   // враги, погибшие за тик ([]*component.Enemy)
	EnemyEscape  EventType = "enemy_escape"  // враги, дошедшие до выхода ([]*component.Enemy)
	Cleared      EventType = "cleared"       // на поле и в очереди никого не осталось
	TowerPlaced  EventType = "tower_placed"  // башня построена (*component.Tower)
	TowerRemoved EventType = "tower_removed" // башня продана (*component.Tower)
	WaveStarted  EventType = "wave_started"  // номер волны (int)
	GameOver     EventType = "game_over"     // итоговая фаза (component.MatchPhase)
)
