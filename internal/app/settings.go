// internal/app/settings.go
package app

import (
	"flag"
	"fmt"
	"io"
	"os"

	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/level"
	"grid-tower-defense/pkg/grid"

	"github.com/sirupsen/logrus"
)

// Settings собирает общие флаги командных драйверов
type Settings struct {
	Rows     int
	Cols     int
	Coins    int
	Lives    int
	Seed     int64
	LogLevel string
	LogJSON  bool
}

// Bind registers the settings on fs with defaults from config.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.IntVar(&s.Rows, "rows", config.GridRows, "grid rows")
	fs.IntVar(&s.Cols, "cols", config.GridCols, "grid columns")
	fs.IntVar(&s.Coins, "coins", config.StartingCoins, "starting coins")
	fs.IntVar(&s.Lives, "lives", config.StartingLives, "starting lives")
	fs.Int64Var(&s.Seed, "seed", 0, "wave seed, 0 picks one from the clock")
	fs.StringVar(&s.LogLevel, "log-level", "info", "logrus level")
	fs.BoolVar(&s.LogJSON, "log-json", false, "log as JSON")
}

// Logger builds the root log entry. Output goes to out, stderr when nil.
func (s Settings) Logger(out io.Writer) (*logrus.Entry, error) {
	l := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l.SetLevel(lvl)
	if s.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrus.NewEntry(l), nil
}

// Options turns the settings into match options on the standard level with
// spawn and goal in opposite corners.
func (s Settings) Options(log *logrus.Entry) Options {
	opts := DefaultOptions()
	opts.Rows, opts.Cols = s.Rows, s.Cols
	opts.Goal = grid.Cell{Row: s.Rows - 1, Col: s.Cols - 1}
	opts.Coins, opts.Lives = s.Coins, s.Lives
	opts.Level = level.NewStandard(s.Seed)
	opts.Logger = log
	return opts
}
