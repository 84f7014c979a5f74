// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-social-defense/internal/interfaces"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context: общие зависимости состояний. Store может быть nil, тогда
// сохранения отключены.
type Context struct {
	Game   interfaces.Game
	Store  interfaces.SaveStore
	Slot   string
	Logger zerolog.Logger
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Ctx     *Context
}

func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Ctx: ctx}
}

// SetState выходит из текущего состояния и входит в новое.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние или nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
