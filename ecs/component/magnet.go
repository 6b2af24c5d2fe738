package component

// Magnet marks the singleton magnet projectile and holds its settle tuning.
type Magnet struct {
	// SettleSpeed is the planar speed under which the magnet freezes.
	SettleSpeed float64
	// AgingStep is added to the magnet's friction every step once it is older
	// than its alive time.
	AgingStep float64
}

var MagnetComponent = NewComponent[Magnet]()

// MagnetStrength is the proportional pull applied to bullets.
type MagnetStrength struct {
	Value float64
}

var MagnetStrengthComponent = NewComponent[MagnetStrength]()

// MagnetAliveTime ages a moving magnet. It is removed for good when the
// magnet settles.
type MagnetAliveTime struct {
	Current float64
	Max     float64
}

var MagnetAliveTimeComponent = NewComponent[MagnetAliveTime]()
