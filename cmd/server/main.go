// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	var settings app.Settings
	settings.Bind(flag.CommandLine)
	addr := flag.String("addr", "", "listen address, defaults to $PORT or "+config.DefaultListenAddr)
	tick := flag.Duration("tick", time.Second/config.TPS, "simulation tick, 0 steps only on POST /step")
	flag.Parse()

	entry, err := settings.Logger(nil)
	if err != nil {
		log.Fatalln(err)
	}
	game, err := app.NewGame(settings.Options(entry))
	if err != nil {
		entry.WithError(err).Fatal("new game")
	}

	if *addr == "" {
		*addr = config.DefaultListenAddr
		if port := os.Getenv("PORT"); port != "" {
			*addr = ":" + port
		}
		entry.Infof("Defaulting to %s", *addr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(game, *tick, entry)
	go srv.Run(ctx)

	httpServer := &http.Server{Addr: *addr, Handler: srv}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdown)
	}()
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		entry.WithError(err).Fatal("listen")
	}
}
