// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// GameOverState shows the outcome for a moment and then starts a new game on the same board.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	outcome app.Outcome
	elapsed float64
}

func NewGameOverState(sm *StateMachine, game *GameState, outcome app.Outcome) *GameOverState {
	return &GameOverState{sm: sm, game: game, outcome: outcome}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed < config.GameOverDelay {
		return
	}
	if err := s.game.game.BeginNewGame(); err != nil {
		log.Printf("Не удалось начать новую игру: %v", err)
		return
	}
	s.sm.Pop()
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	w, h := float32(config.ScreenWidth), float32(config.ScreenHeight)
	vector.DrawFilledRect(screen, 0, h/2-30, w, 60, color.RGBA{0, 0, 0, 160}, false)
	msg := fmt.Sprintf("%s! New game in %.0fs", s.outcome, config.GameOverDelay-s.elapsed+0.5)
	bounds := text.BoundString(basicfont.Face7x13, msg)
	text.Draw(screen, msg, basicfont.Face7x13, int(w)/2-bounds.Dx()/2, int(h)/2+5, color.White)
}
