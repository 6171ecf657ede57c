// internal/defs/waves.go
package defs

// Spawn — один элемент волны: враг EnemyID появляется через Offset тиков
// после постановки волны в очередь.
type Spawn struct {
	Offset  int    `json:"offset"`
	EnemyID string `json:"enemy_id"`
}

// SpawnWeight is one entry of a weighted enemy table; Weight is the relative
// chance of EnemyID being picked.
type SpawnWeight struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}
