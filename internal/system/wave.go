// internal/system/wave.go
package system

import (
	"sort"

	"grid-tower-defense/internal/defs"
)

// pendingSpawn is a queued enemy due at an absolute tick.
type pendingSpawn struct {
	Due     int
	EnemyID string
	seq     int
}

// WaveSystem держит очередь ещё не появившихся врагов.
type WaveSystem struct {
	pending []pendingSpawn
	seq     int
}

func NewWaveSystem() *WaveSystem {
	return &WaveSystem{}
}

// Queue schedules spawns relative to now. Spawns due on the same tick keep
// the order they were queued in.
func (s *WaveSystem) Queue(now int, spawns []defs.Spawn) {
	for _, sp := range spawns {
		offset := sp.Offset
		if offset < 0 {
			offset = 0
		}
		s.pending = append(s.pending, pendingSpawn{Due: now + offset, EnemyID: sp.EnemyID, seq: s.seq})
		s.seq++
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].Due != s.pending[j].Due {
			return s.pending[i].Due < s.pending[j].Due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
}

// Due pops every spawn whose tick has come.
func (s *WaveSystem) Due(tick int) []string {
	n := 0
	for n < len(s.pending) && s.pending[n].Due <= tick {
		n++
	}
	if n == 0 {
		return nil
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = s.pending[i].EnemyID
	}
	s.pending = append(s.pending[:0], s.pending[n:]...)
	return ids
}

// Pending возвращает, сколько врагов ещё ждут появления
func (s *WaveSystem) Pending() int {
	return len(s.pending)
}

func (s *WaveSystem) Reset() {
	s.pending = nil
	s.seq = 0
}
