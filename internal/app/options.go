// internal/app/options.go
package app

import (
	"flag"
	"fmt"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/grid"
)

// Options are the command line settings shared by every front end.
type Options struct {
	Scenario string
	Width    int
	Height   int
	Seed     int64
}

// RegisterFlags binds the options to fs with the default board size from config.
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.Scenario, "scenario", "", "path to a JSON or YAML definitions file (built-in scenario if empty)")
	fs.IntVar(&o.Width, "width", config.BoardWidth, "board width in tiles")
	fs.IntVar(&o.Height, "height", config.BoardHeight, "board height in tiles")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed (0 = time based)")
	return o
}

// NewSession loads the definitions and creates a game on a fresh board.
func NewSession(o *Options) (*Game, error) {
	if o.Width < 1 || o.Height < 1 || o.Width*o.Height < 2 {
		return nil, fmt.Errorf("board %dx%d needs at least two tiles", o.Width, o.Height)
	}
	d := defs.Default()
	if o.Scenario != "" {
		loaded, err := defs.Load(o.Scenario)
		if err != nil {
			return nil, err
		}
		d = loaded
	}
	return NewGame(grid.NewBoard(o.Width, o.Height), d, o.Seed)
}
