package ecs

// Tick is the read-only per-step snapshot handed to every system.
type Tick struct {
	// Dt is the simulated time of this step in seconds.
	Dt    float64
	Input Input
}

// Input is a snapshot of keyboard and pointer state for one step. Keys are
// named with ebiten key names ("W", "Space", "ShiftLeft").
type Input struct {
	pressed     map[string]bool
	justPressed map[string]bool

	// Cursor is the pointer position in window pixels; HasCursor is false when
	// the pointer is outside the window.
	CursorX   float64
	CursorY   float64
	HasCursor bool

	// Viewport is the logical screen size the cursor is measured against.
	ViewportW float64
	ViewportH float64
}

// Press marks key as held.
func (in *Input) Press(key string) {
	if in.pressed == nil {
		in.pressed = make(map[string]bool)
	}
	in.pressed[key] = true
}

// Tap marks key as held and pressed this step.
func (in *Input) Tap(key string) {
	in.Press(key)
	if in.justPressed == nil {
		in.justPressed = make(map[string]bool)
	}
	in.justPressed[key] = true
}

// Pressed reports whether key is held.
func (in Input) Pressed(key string) bool {
	return key != "" && in.pressed[key]
}

// JustPressed reports whether key went down this step.
func (in Input) JustPressed(key string) bool {
	return key != "" && in.justPressed[key]
}

// SetCursor records the pointer position in window pixels.
func (in *Input) SetCursor(x, y float64) {
	in.CursorX = x
	in.CursorY = y
	in.HasCursor = true
}
