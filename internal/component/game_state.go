// internal/component/game_state.go
package component

// MatchPhase — состояние матча: setup → running ⇄ paused → won | lost
type MatchPhase int

const (
	PhaseSetup MatchPhase = iota
	PhaseRunning
	PhasePaused
	PhaseWon
	PhaseLost
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// Over reports whether the phase is terminal.
func (p MatchPhase) Over() bool {
	return p == PhaseWon || p == PhaseLost
}
