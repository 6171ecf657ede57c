// cmd/game/main.go
package main

import (
	"flag"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

const startFromGame = true // начинать сразу с игры, минуя меню

func main() {
	var settings app.Settings
	settings.Bind(flag.CommandLine)
	flag.Parse()

	entry, err := settings.Logger(nil)
	if err != nil {
		log.Fatalln(err)
	}
	game, err := app.NewGame(settings.Options(entry))
	if err != nil {
		entry.WithError(err).Fatal("new game")
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	width, height := state.ScreenSize(settings.Rows, settings.Cols, config.CellSize)
	sm.SetSize(width, height)
	if startFromGame {
		sm.SetState(state.NewGameState(sm, game, entry))
	} else {
		sm.SetState(state.NewMenuState(sm, game, entry))
	}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Grid Tower Defense")
	if err := ebiten.RunGame(sm); err != nil {
		entry.WithError(err).Fatal("run")
	}
}
