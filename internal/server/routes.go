// internal/server/routes.go
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/grid"

	"github.com/matryer/way"
)

const URI_WS = "/ws"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/snapshot", s.handleSnapshot())
	s.router.HandleFunc("GET", URI_WS, s.handleWebsocket())
	s.router.HandleFunc("POST", "/towers/:row/:col", s.handlePlace())
	s.router.HandleFunc("DELETE", "/towers/:row/:col", s.handleRemove())
	s.router.HandleFunc("POST", "/towers/:row/:col/upgrade", s.handleUpgrade())
	s.router.HandleFunc("POST", "/towers/:row/:col/level", s.handleLevelUp())
	s.router.HandleFunc("POST", "/waves", s.handleQueueWave())
	s.router.HandleFunc("POST", "/waves/next", s.handleNextWave())
	s.router.HandleFunc("POST", "/start", s.handlePhase(func(g *app.Game) { g.Start() }))
	s.router.HandleFunc("POST", "/pause", s.handlePhase(func(g *app.Game) { g.Pause() }))
	s.router.HandleFunc("POST", "/resume", s.handlePhase(func(g *app.Game) { g.Resume() }))
	s.router.HandleFunc("POST", "/reset", s.handleReset())
	s.router.HandleFunc("POST", "/step", s.handleStep())
}

type towerRequest struct {
	Tower string `json:"tower"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps game errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrOutOfBounds), errors.Is(err, app.ErrInvalidUpgrade):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrUnknownTower), errors.Is(err, app.ErrUnknownEnemy),
		errors.Is(err, app.ErrNothingToRemove), errors.Is(err, app.ErrNoMoreWaves):
		return http.StatusNotFound
	case errors.Is(err, app.ErrCellOccupied), errors.Is(err, app.ErrPathBlocked):
		return http.StatusConflict
	case errors.Is(err, app.ErrInsufficientCoins):
		return http.StatusPaymentRequired
	case errors.Is(err, app.ErrMatchOver):
		return http.StatusGone
	case errors.Is(err, ErrStopped):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func cellParam(r *http.Request) (grid.Cell, error) {
	row, err := strconv.Atoi(way.Param(r.Context(), "row"))
	if err != nil {
		return grid.Cell{}, app.ErrOutOfBounds
	}
	col, err := strconv.Atoi(way.Param(r.Context(), "col"))
	if err != nil {
		return grid.Cell{}, app.ErrOutOfBounds
	}
	return grid.Cell{Row: row, Col: col}, nil
}

func (s *Server) handleSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			return g.Snapshot(), nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// towerAction decodes the cell and runs fn with it on the loop goroutine.
func (s *Server) towerAction(status int, fn func(g *app.Game, c grid.Cell, req towerRequest) (*component.Tower, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cell, err := cellParam(r)
		if err != nil {
			s.fail(w, err)
			return
		}
		var req towerRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
		}
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			t, err := fn(g, cell, req)
			if err != nil {
				return nil, err
			}
			return app.ViewTower(t), nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, status, v)
	}
}

func (s *Server) handlePlace() http.HandlerFunc {
	return s.towerAction(http.StatusCreated, func(g *app.Game, c grid.Cell, req towerRequest) (*component.Tower, error) {
		return g.Place(c, req.Tower)
	})
}

func (s *Server) handleRemove() http.HandlerFunc {
	return s.towerAction(http.StatusOK, func(g *app.Game, c grid.Cell, _ towerRequest) (*component.Tower, error) {
		return g.Remove(c)
	})
}

func (s *Server) handleUpgrade() http.HandlerFunc {
	return s.towerAction(http.StatusOK, func(g *app.Game, c grid.Cell, req towerRequest) (*component.Tower, error) {
		return g.Upgrade(c, req.Tower)
	})
}

func (s *Server) handleLevelUp() http.HandlerFunc {
	return s.towerAction(http.StatusOK, func(g *app.Game, c grid.Cell, _ towerRequest) (*component.Tower, error) {
		return g.LevelUp(c)
	})
}

func (s *Server) handleQueueWave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spawns []defs.Spawn
		if err := json.NewDecoder(r.Body).Decode(&spawns); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			if err := g.QueueWave(spawns); err != nil {
				return nil, err
			}
			return map[string]int{"pending": g.Pending()}, nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, v)
	}
}

func (s *Server) handleNextWave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			n, err := g.NextWave()
			if err != nil {
				return nil, err
			}
			return map[string]int{"wave": n}, nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) handlePhase(fn func(g *app.Game)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			fn(g)
			return map[string]string{"phase": g.Phase().String()}, nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) handleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			if err := g.Reset(); err != nil {
				return nil, err
			}
			return map[string]string{"phase": g.Phase().String()}, nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// handleStep advances the game by ?n= ticks (default 1).
func (s *Server) handleStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := 1
		if q := r.URL.Query().Get("n"); q != "" {
			v, err := strconv.Atoi(q)
			if err != nil || v < 1 {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "n must be a positive integer"})
				return
			}
			n = v
		}
		v, err := s.do(func(g *app.Game) (interface{}, error) {
			for i := 0; i < n; i++ {
				if !g.Step() {
					break
				}
			}
			return map[string]interface{}{"tick": g.Tick(), "phase": g.Phase().String()}, nil
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) handleWebsocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()

		ch, err := s.subscribe()
		if err != nil {
			return
		}
		defer s.unsubscribe(ch)
		s.log.WithField("remote", r.RemoteAddr).Info("spectator connected")

		// читаем только чтобы заметить закрытие соединения
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteJSON(m); err != nil {
					s.log.WithError(err).Debug("websocket write failed")
					return
				}
			case <-closed:
				s.log.WithField("remote", r.RemoteAddr).Info("spectator disconnected")
				return
			}
		}
	}
}
