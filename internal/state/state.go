// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps a stack of states. Only the top one is updated and drawn; overlays
// such as pause and game over are pushed over the running game and popped off again.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState drops every state on the stack and starts newState.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	sm.Push(newState)
}

// Push enters newState on top of the current one.
func (sm *StateMachine) Push(newState State) {
	if newState == nil {
		return
	}
	sm.stack = append(sm.stack, newState)
	newState.Enter()
}

// Pop leaves the top state and resumes the one below it.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current returns the top state, or nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth returns the number of stacked states.
func (sm *StateMachine) Depth() int { return len(sm.stack) }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
