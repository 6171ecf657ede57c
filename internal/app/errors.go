// internal/app/errors.go
package app

import (
	"errors"

	"grid-tower-defense/pkg/grid"
)

var (
	ErrOutOfBounds       = grid.ErrOutOfBounds
	ErrCellOccupied      = errors.New("cell occupied")
	ErrPathBlocked       = errors.New("placement would block the path")
	ErrNothingToRemove   = errors.New("nothing to remove")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrUnknownEnemy      = errors.New("unknown enemy")
	ErrInvalidUpgrade    = errors.New("invalid upgrade")
	ErrNoMoreWaves       = errors.New("no more waves")
	ErrMatchOver         = errors.New("match is over")
	ErrReentrant         = errors.New("called from inside a step")
	ErrInvalidOptions    = errors.New("invalid options")
)
