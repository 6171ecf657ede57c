// internal/server/server.go
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/event"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
)

var ErrStopped = errors.New("server loop stopped")

// Message — то, что уходит подписчикам по вебсокету
type Message struct {
	Type     string        `json:"type"` // "snapshot" или "event"
	Snapshot *app.Snapshot `json:"snapshot,omitempty"`
	Event    string        `json:"event,omitempty"`
	Count    int           `json:"count,omitempty"`
}

type result struct {
	value interface{}
	err   error
}

// command runs on the loop goroutine, the only one touching the Game.
// Quiet commands only touch the subscriber set and are not followed by a
// broadcast.
type command struct {
	apply func(g *app.Game) (interface{}, error)
	reply chan result
	quiet bool
}

// Server drives one Game on a fixed tick and exposes it over HTTP.
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	log      *logrus.Entry

	game     *app.Game
	tick     time.Duration
	commands chan command
	done     chan struct{}

	// принадлежат горутине цикла
	subscribers map[chan Message]struct{}
	outbox      []Message
}

// New wraps g. tick <= 0 means the loop never steps on its own and the game
// only advances through POST /step.
func New(g *app.Game, tick time.Duration, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{
		upgrader:    &websocket.Upgrader{},
		log:         log.WithField("component", "server"),
		game:        g,
		tick:        tick,
		commands:    make(chan command),
		done:        make(chan struct{}),
		subscribers: make(map[chan Message]struct{}),
	}
	s.routes()
	s.watch()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// watch forwards game events to subscribers once the step that raised them
// is over.
func (s *Server) watch() {
	for _, t := range []event.EventType{event.EnemyDeath, event.EnemyEscape} {
		t := t
		s.game.On(t, func(e event.Event) {
			n := len(e.Data.([]*component.Enemy))
			s.outbox = append(s.outbox, Message{Type: "event", Event: string(t), Count: n})
			s.log.WithFields(logrus.Fields{"event": t, "count": n}).Debug("game event")
		})
	}
	for _, t := range []event.EventType{event.Cleared, event.WaveStarted, event.GameOver} {
		t := t
		s.game.On(t, func(e event.Event) {
			s.outbox = append(s.outbox, Message{Type: "event", Event: string(t)})
			s.log.WithField("event", t).Info("game event")
		})
	}
}

// Run owns the Game until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	defer close(s.done)
	var ticks <-chan time.Time
	if s.tick > 0 {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()
		ticks = ticker.C
	}
	s.log.WithField("tick", s.tick).Info("loop start")
	for {
		select {
		case <-ctx.Done():
			for ch := range s.subscribers {
				close(ch)
			}
			s.subscribers = nil
			s.log.Info("loop stop")
			return
		case <-ticks:
			s.game.Step()
			s.broadcast()
		case cmd := <-s.commands:
			v, err := cmd.apply(s.game)
			cmd.reply <- result{value: v, err: err}
			if !cmd.quiet {
				s.broadcast()
			}
		}
	}
}

func (s *Server) broadcast() {
	snap := s.game.Snapshot()
	msgs := append(s.outbox, Message{Type: "snapshot", Snapshot: &snap})
	s.outbox = nil
	for ch := range s.subscribers {
		for _, m := range msgs {
			select {
			case ch <- m:
			default:
				s.log.Warn("subscriber too slow, message dropped")
			}
		}
	}
}

// do runs fn on the loop goroutine and waits for its result.
func (s *Server) do(fn func(g *app.Game) (interface{}, error)) (interface{}, error) {
	return s.send(command{apply: fn})
}

func (s *Server) send(cmd command) (interface{}, error) {
	reply := make(chan result, 1)
	cmd.reply = reply
	select {
	case s.commands <- cmd:
	case <-s.done:
		return nil, ErrStopped
	}
	select {
	case r := <-reply:
		return r.value, r.err
	case <-s.done:
		return nil, ErrStopped
	}
}

func (s *Server) subscribe() (chan Message, error) {
	ch := make(chan Message, config.SnapshotBuffer)
	// первый снапшот только новому подписчику, остальным рассылать нечего
	_, err := s.send(command{quiet: true, apply: func(g *app.Game) (interface{}, error) {
		s.subscribers[ch] = struct{}{}
		snap := g.Snapshot()
		ch <- Message{Type: "snapshot", Snapshot: &snap}
		return nil, nil
	}})
	return ch, err
}

func (s *Server) unsubscribe(ch chan Message) {
	s.send(command{quiet: true, apply: func(*app.Game) (interface{}, error) {
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		return nil, nil
	}})
}
