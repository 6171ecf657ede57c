// internal/level/standard.go
package level

import (
	"math"
	"time"

	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/utils"
)

const standardWaves = 20

// hecticWeights задаёт состав поздних волн
var hecticWeights = []defs.SpawnWeight{
	{EnemyID: "simple", Weight: 6},
	{EnemyID: "steel", Weight: 3},
	{EnemyID: "energy_beast", Weight: 1},
}

// Standard строит двадцать волн: две ручные, затем растущие потоки простых
// врагов, босс на десятой и смешанные волны до конца.
type Standard struct {
	seed int64
}

// NewStandard builds the level. The same non-zero seed always produces the
// same waves; zero picks a seed from the clock.
func NewStandard(seed int64) *Standard {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Standard{seed: seed}
}

func (s *Standard) MaxWave() int {
	return standardWaves
}

func (s *Standard) Wave(n int) []defs.Spawn {
	switch {
	case n < 1 || n > standardWaves:
		return nil
	case n == 1:
		return []defs.Spawn{{Offset: 10, EnemyID: "simple"}, {Offset: 50, EnemyID: "simple"}}
	case n == 2:
		return []defs.Spawn{
			{Offset: 10, EnemyID: "simple"},
			{Offset: 15, EnemyID: "energy_beast"},
			{Offset: 30, EnemyID: "energy_beast"},
		}
	case n < 10:
		steps := int(40 * math.Sqrt(float64(n)))
		return GenerateSubWaves([]SubWave{{Steps: steps, Count: n * 2, Pick: Enemy("simple")}})
	case n == 10:
		spawns := GenerateSubWaves([]SubWave{
			{Steps: 50, Count: 10, Pick: Enemy("simple")},
			{Steps: 100},
			{Steps: 50, Count: 10, Pick: Enemy("steel")},
		})
		return append(spawns, defs.Spawn{Offset: 10, EnemyID: "boss"})
	}

	rng := utils.NewPRNGService(s.seed).ForWave(n)
	count := int(25 * math.Pow(float64(n), float64(n)/50))
	spawns := GenerateSubWaves([]SubWave{{Steps: 13 * n, Count: count, Pick: rng.Picker(hecticWeights)}})
	return append(spawns, defs.Spawn{Offset: 30, EnemyID: "boss"})
}
