package component

// Projectile marks anything fired by a weapon. Kind is fixed at spawn time.
type Projectile struct {
	Kind ProjectileKind
}

var ProjectileComponent = NewComponent[Projectile]()

// BulletTag marks projectiles the magnet pulls on (bullets and weak bullets).
type BulletTag struct{}

var BulletTagComponent = NewComponent[BulletTag]()

// ProjectileFriction is the per-step multiplicative damping factor carried
// over from the firing weapon.
type ProjectileFriction struct {
	Value float64
}

var ProjectileFrictionComponent = NewComponent[ProjectileFriction]()

// Lifetime is the simulated time a projectile may exist before removal.
type Lifetime struct {
	Remaining float64
	Total     float64
}

func NewLifetime(total float64) Lifetime {
	return Lifetime{Remaining: total, Total: total}
}

var LifetimeComponent = NewComponent[Lifetime]()
