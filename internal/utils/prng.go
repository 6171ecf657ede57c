// internal/utils/prng.go
package utils

import (
	"math/rand"

	"grid-tower-defense/internal/defs"
)

// PRNGService выдаёт детерминированные случайные решения для генерации волн.
// Один и тот же сид всегда даёт одну и ту же последовательность, включая ноль.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

func NewPRNGService(seed int64) *PRNGService {
	return &PRNGService{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// ForWave returns an independent stream for wave n. Streams for different
// waves never depend on how many values earlier waves consumed.
func (s *PRNGService) ForWave(n int) *PRNGService {
	return NewPRNGService(s.seed*31 + int64(n))
}

// PickEnemy chooses an enemy id from table with probability proportional to
// its weight. Entries with weight <= 0 are never picked unless every weight
// is non-positive, in which case the first entry wins. An empty table gives "".
func (s *PRNGService) PickEnemy(table []defs.SpawnWeight) string {
	if len(table) == 0 {
		return ""
	}
	total := 0
	for _, w := range table {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total == 0 {
		return table[0].EnemyID
	}

	r := s.rng.Intn(total)
	for _, w := range table {
		if w.Weight <= 0 {
			continue
		}
		if r < w.Weight {
			return w.EnemyID
		}
		r -= w.Weight
	}
	return table[len(table)-1].EnemyID
}

// Picker adapts PickEnemy to the per-index pickers sub-waves use.
func (s *PRNGService) Picker(table []defs.SpawnWeight) func(int) string {
	return func(int) string { return s.PickEnemy(table) }
}
