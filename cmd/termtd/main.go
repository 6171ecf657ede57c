// cmd/termtd/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/termview"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	var settings app.Settings
	settings.Bind(flag.CommandLine)
	logPath := flag.String("log-file", "termtd.log", "log file, the terminal is busy drawing")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalln(err)
	}
	defer logFile.Close()
	entry, err := settings.Logger(logFile)
	if err != nil {
		log.Fatalln(err)
	}

	game, err := app.NewGame(settings.Options(entry))
	if err != nil {
		entry.WithError(err).Fatal("new game")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		entry.WithError(err).Fatal("screen")
	}
	if err := screen.Init(); err != nil {
		entry.WithError(err).Fatal("screen init")
	}
	defer screen.Fini()

	var chime *termview.Chime
	if !*mute {
		// без звука тоже можно играть
		if chime, err = termview.NewChime(); err != nil {
			entry.WithError(err).Warn("audio initialization failed")
		}
		defer chime.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	termview.New(screen, game, chime, entry).Run(ctx)
	entry.WithFields(log.Fields{"score": game.Score(), "wave": game.Wave()}).Info("bye")
}
