// internal/system/utils.go
package system

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/grid"
)

// ApplyDamage наносит урон врагу с учётом иммунитетов. Урон иммунного типа
// молча игнорируется. Враг с нулевым здоровьем сразу считается мёртвым и
// больше не выбирается целью в этом тике.
func ApplyDamage(enemy *component.Enemy, damage int, damageType defs.DamageType) bool {
	if enemy == nil {
		return false
	}
	return enemy.Damage(damage, damageType)
}

// offsetInCells is the vector from a to b measured in cells.
func offsetInCells(a, b grid.Point, cellSize float64) grid.Point {
	return b.Sub(a).Scale(1 / cellSize)
}
