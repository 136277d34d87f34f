package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition           = ebiten.CursorPosition
	isMouseButtonJustPressed = inpututil.IsMouseButtonJustPressed
	isKeyJustPressed         = inpututil.IsKeyJustPressed
	wheel                    = ebiten.Wheel
	setCursorShape           = ebiten.SetCursorShape
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	wh func() (float64, float64),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonJustPressed
	oldKey := isKeyJustPressed
	oldWheel := wheel
	oldShape := setCursorShape
	cursorPosition = cursor
	isMouseButtonJustPressed = mouse
	isKeyJustPressed = key
	wheel = wh
	setCursorShape = func(ebiten.CursorShapeType) {}
	return func() {
		cursorPosition = oldCursor
		isMouseButtonJustPressed = oldMouse
		isKeyJustPressed = oldKey
		wheel = oldWheel
		setCursorShape = oldShape
	}
}
