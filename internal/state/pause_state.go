// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the simulation; the board can still be edited.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.togglePause()
		return
	}
	s.game.handleCommonInput()
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	w := float32(config.ScreenWidth)
	vector.DrawFilledRect(screen, 0, 0, w, 40, color.RGBA{0, 0, 0, 128}, false)
	msg := "PAUSED"
	bounds := text.BoundString(basicfont.Face7x13, msg)
	text.Draw(screen, msg, basicfont.Face7x13, int(w)/2-bounds.Dx()/2, 25, color.White)
}
