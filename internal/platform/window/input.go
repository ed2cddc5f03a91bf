package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// inputSource is the part of ebiten's input state the window reads.
type inputSource interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	KeyJustReleased(k ebiten.Key) bool
	MouseJustPressed() bool
	MouseJustReleased() bool
	Cursor() (x, y int)
}

// heldBindings are actions active while any of their keys is down.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// pressBindings are actions triggered once on a key press.
var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// fireKey fires like the left mouse button.
const fireKey = ebiten.KeySpace

// readInput builds one input frame. The cursor is given in window pixels,
// which match viewport pixels since the layout is not scaled.
func readInput(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()

	for action, keys := range heldBindings {
		for _, k := range keys {
			if src.KeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, keys := range pressBindings {
		for _, k := range keys {
			if src.KeyJustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	if src.MouseJustPressed() || src.KeyJustPressed(fireKey) {
		frame.Set(core.ActionFire)
	}
	if src.MouseJustReleased() || src.KeyJustReleased(fireKey) {
		frame.Set(core.ActionFireRelease)
	}

	x, y := src.Cursor()
	frame.SetPointer(float64(x), float64(y))
	return frame
}

// ebitenInput reads the live ebiten input state.
type ebitenInput struct{}

func (ebitenInput) KeyPressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenInput) KeyJustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) KeyJustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenInput) Cursor() (int, int)                { return ebiten.CursorPosition() }

func (ebitenInput) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
