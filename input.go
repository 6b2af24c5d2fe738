package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/magnetgun/ecs"
)

// Input polls ebiten once per tick and exposes the result as the immutable
// snapshot systems read.
type Input struct {
	viewW, viewH float64

	pressed     []ebiten.Key
	justPressed []ebiten.Key
	snap        ecs.Input
}

func NewInput(viewW, viewH int) *Input {
	return &Input{viewW: float64(viewW), viewH: float64(viewH)}
}

func (i *Input) Update() {
	i.pressed = inpututil.AppendPressedKeys(i.pressed[:0])
	i.justPressed = inpututil.AppendJustPressedKeys(i.justPressed[:0])

	snap := ecs.Input{ViewportW: i.viewW, ViewportH: i.viewH}
	for _, k := range i.pressed {
		snap.Press(k.String())
	}
	for _, k := range i.justPressed {
		snap.Tap(k.String())
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if x >= 0 && y >= 0 && x < i.viewW && y < i.viewH {
		snap.SetCursor(x, y)
	}
	i.snap = snap
}

func (i *Input) Snapshot() ecs.Input {
	return i.snap
}

func (i *Input) JustPressed(key string) bool {
	return i.snap.JustPressed(key)
}

// validateKeys checks that every non-empty name is an ebiten key name, so a
// typo in a config or prefab fails at startup instead of silently never firing.
func validateKeys(names map[string]string) error {
	for what, name := range names {
		if name == "" {
			continue
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("%s: unknown key %q", what, name)
		}
	}
	return nil
}
