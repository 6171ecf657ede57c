package level

import (
	"testing"

	"grid-tower-defense/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIntervals(t *testing.T) {
	assert.Equal(t, []int{0, 25, 50, 75}, GenerateIntervals(100, 4))
	assert.Equal(t, []int{0, 3, 6}, GenerateIntervals(10, 3))
	assert.Nil(t, GenerateIntervals(10, 0))
}

func TestGenerateSubWavesLaysEndToEnd(t *testing.T) {
	spawns := GenerateSubWaves([]SubWave{
		{Steps: 10, Count: 2, Pick: Enemy("a")},
		{Steps: 100},
		{Steps: 10, Count: 2, Pick: Enemy("b")},
	})
	assert.Equal(t, []defs.Spawn{
		{Offset: 0, EnemyID: "a"},
		{Offset: 5, EnemyID: "a"},
		{Offset: 110, EnemyID: "b"},
		{Offset: 115, EnemyID: "b"},
	}, spawns)
}

func TestStandardWavesExistAndReferenceKnownEnemies(t *testing.T) {
	cat := defs.MustDefaultCatalog()
	lvl := NewStandard(7)
	require.Equal(t, 20, lvl.MaxWave())
	for n := 1; n <= lvl.MaxWave(); n++ {
		wave := lvl.Wave(n)
		require.NotEmpty(t, wave, "wave %d", n)
		for _, sp := range wave {
			_, ok := cat.Enemy(sp.EnemyID)
			assert.True(t, ok, "wave %d: %s", n, sp.EnemyID)
			assert.GreaterOrEqual(t, sp.Offset, 0)
		}
	}
	assert.Nil(t, lvl.Wave(0))
	assert.Nil(t, lvl.Wave(21))
	assert.Len(t, lvl.Wave(5), 10)
}

func TestStandardIsSeeded(t *testing.T) {
	assert.Equal(t, NewStandard(99).Wave(15), NewStandard(99).Wave(15))
	a := NewStandard(1)
	assert.Equal(t, a.Wave(12), a.Wave(12), "waves are stable across calls")
}

func TestScripted(t *testing.T) {
	s := &Scripted{Waves: [][]defs.Spawn{{{Offset: 1, EnemyID: "simple"}}}}
	assert.Equal(t, 1, s.MaxWave())
	w := s.Wave(1)
	w[0].EnemyID = "changed"
	assert.Equal(t, "simple", s.Wave(1)[0].EnemyID)
	assert.Nil(t, s.Wave(2))
}
