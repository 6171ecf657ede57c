// internal/level/level.go
package level

import (
	"grid-tower-defense/internal/defs"
)

// Level выдаёт состав волн матча. Волны нумеруются с 1.
type Level interface {
	Wave(n int) []defs.Spawn
	MaxWave() int
}

// SubWave описывает участок волны: Count врагов, распределённых по Steps тикам.
// Count == 0 или пустой Pick даёт паузу длиной Steps.
type SubWave struct {
	Steps int
	Count int
	Pick  func(i int) string
}

// Enemy is a Pick that always returns id.
func Enemy(id string) func(int) string {
	return func(int) string { return id }
}

// GenerateIntervals spreads count spawns evenly across steps ticks, starting
// at tick 0.
func GenerateIntervals(steps, count int) []int {
	if count <= 0 {
		return nil
	}
	out := make([]int, count)
	size := float64(steps) / float64(count)
	for i := range out {
		out[i] = int(float64(i) * size)
	}
	return out
}

// GenerateSubWaves lays sub-waves end to end.
func GenerateSubWaves(subs []SubWave) []defs.Spawn {
	var spawns []defs.Spawn
	offset := 0
	for _, sw := range subs {
		if sw.Count > 0 && sw.Pick != nil {
			for i, step := range GenerateIntervals(sw.Steps, sw.Count) {
				spawns = append(spawns, defs.Spawn{Offset: offset + step, EnemyID: sw.Pick(i)})
			}
		}
		offset += sw.Steps
	}
	return spawns
}

// Scripted is a level with every wave spelled out.
type Scripted struct {
	Waves [][]defs.Spawn `json:"waves"`
}

func (s *Scripted) Wave(n int) []defs.Spawn {
	if n < 1 || n > len(s.Waves) {
		return nil
	}
	return append([]defs.Spawn(nil), s.Waves[n-1]...)
}

func (s *Scripted) MaxWave() int {
	return len(s.Waves)
}
