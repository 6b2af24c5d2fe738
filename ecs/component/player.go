package component

// Player holds the movement tuning of the controlled avatar.
type Player struct {
	MoveSpeed float64
	// Acceleration scales how much of the missing speed is gained per second.
	Acceleration float64
	Friction     float64
	// StopSpeed is the friction floor so slow movement still decays.
	StopSpeed float64
}

var PlayerComponent = NewComponent[Player]()

// Controls names the keys that drive the player.
type Controls struct {
	Up    string
	Down  string
	Left  string
	Right string
}

var ControlsComponent = NewComponent[Controls]()
