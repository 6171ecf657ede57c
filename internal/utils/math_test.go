package utils

import (
	"math"
	"testing"

	"grid-tower-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
}

func TestRotateToward(t *testing.T) {
	got, done := RotateToward(0, math.Pi/2, math.Pi/6)
	assert.False(t, done)
	assert.InDelta(t, math.Pi/6, got, 1e-12)

	// короткий путь через -π
	got, done = RotateToward(3*math.Pi/4, -3*math.Pi/4, math.Pi/8)
	assert.False(t, done)
	assert.InDelta(t, 7*math.Pi/8, got, 1e-12)

	got, done = RotateToward(0.1, 0.2, math.Pi/6)
	assert.True(t, done)
	assert.InDelta(t, 0.2, got, 1e-12)
}

func TestRotate(t *testing.T) {
	x, y := Rotate(1, 0, math.Pi/2)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestPickEnemyIsSeeded(t *testing.T) {
	table := []defs.SpawnWeight{{EnemyID: "a", Weight: 1}, {EnemyID: "b", Weight: 3}, {EnemyID: "c", Weight: 0}, {EnemyID: "d", Weight: -2}}
	first, second := NewPRNGService(0), NewPRNGService(0)
	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		pick := first.PickEnemy(table)
		assert.Equal(t, pick, second.PickEnemy(table), "seed 0 is a seed like any other")
		counts[pick]++
	}
	assert.Zero(t, counts["c"])
	assert.Zero(t, counts["d"])
	assert.Greater(t, counts["b"], counts["a"])

	assert.Equal(t, "", first.PickEnemy(nil))
	assert.Equal(t, "x", first.PickEnemy([]defs.SpawnWeight{{EnemyID: "x"}, {EnemyID: "y"}}))
}

func TestForWaveStreamsAreIndependent(t *testing.T) {
	table := []defs.SpawnWeight{{EnemyID: "a", Weight: 1}, {EnemyID: "b", Weight: 1}}
	base := NewPRNGService(7)
	fresh := base.ForWave(12).Picker(table)

	used := base.ForWave(12)
	busy := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		busy.PickEnemy(table)
	}
	again := busy.ForWave(12).Picker(table)
	for i := 0; i < 20; i++ {
		want := fresh(i)
		assert.Equal(t, want, again(i))
		assert.Equal(t, want, used.PickEnemy(table))
	}
}
