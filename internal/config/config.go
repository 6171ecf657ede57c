// internal/config/config.go
package config

import "image/color"

const (
	// Поле
	GridRows = 10
	GridCols = 10
	CellSize = 48.0

	// Симуляция
	TPS             = 50 // тиков симуляции в секунду
	StartingCoins   = 140
	StartingLives   = 20
	SellRatio       = 0.8 // доля стоимости, возвращаемая при продаже
	MovementEpsilon = 1e-9

	// Экран
	SidebarWidth = 240
	HUDHeight    = 40
	ScreenWidth  = GridCols*int(CellSize) + SidebarWidth
	ScreenHeight = GridRows*int(CellSize) + HUDHeight

	HealthBarHeight = 4.0
	StrokeWidth     = 2.0
	CounterTweenSec = 0.35 // длительность анимации счётчиков HUD
	MaxDeltaTime    = 0.1

	// Терминал
	TermTickMillis = 1000 / TPS

	// Сервер
	DefaultListenAddr = ":8080"
	SnapshotBuffer    = 8
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PassableColor    = color.RGBA{70, 100, 120, 220}
	ImpassableColor  = color.RGBA{150, 70, 70, 220}
	GridLineColor    = color.RGBA{40, 50, 60, 255}
	PathColor        = color.RGBA{90, 130, 150, 220}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBackColor  = color.RGBA{80, 20, 20, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	PreviewOKColor   = color.RGBA{50, 255, 50, 90}
	PreviewBadColor  = color.RGBA{255, 50, 50, 90}
	RunningColor     = color.RGBA{70, 130, 180, 220}
	PausedColor      = color.RGBA{220, 60, 60, 220}
)
