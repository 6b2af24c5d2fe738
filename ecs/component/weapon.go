package component

import (
	"fmt"
	"strings"

	"github.com/milk9111/magnetgun/common"
)

// ProjectileKind is the closed set of things a weapon can fire.
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileWeakBullet
	ProjectileMagnet
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileWeakBullet:
		return "weak_bullet"
	case ProjectileMagnet:
		return "magnet"
	default:
		return fmt.Sprintf("projectile(%d)", int(k))
	}
}

// ParseProjectileKind maps a prefab name to a kind.
func ParseProjectileKind(s string) (ProjectileKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bullet":
		return ProjectileBullet, nil
	case "weak_bullet", "weakbullet", "weak-bullet":
		return ProjectileWeakBullet, nil
	case "magnet":
		return ProjectileMagnet, nil
	default:
		return 0, fmt.Errorf("unknown projectile kind %q", s)
	}
}

func (k *ProjectileKind) UnmarshalText(text []byte) error {
	parsed, err := ParseProjectileKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k ProjectileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cooldown is the minimum simulated time between two shots of one weapon.
// Remaining stays within [0, Total].
type Cooldown struct {
	Remaining float64
	Total     float64
}

// NewCooldown returns a cooldown that starts fully charged, so a fresh weapon
// waits Total seconds before its first shot.
func NewCooldown(total float64) Cooldown {
	if total < 0 {
		total = 0
	}
	return Cooldown{Remaining: total, Total: total}
}

// Tick advances the cooldown by dt and reports whether the weapon may fire
// this step.
func (c *Cooldown) Tick(dt float64) bool {
	if c.Remaining-dt > common.TimeEpsilon {
		c.Remaining -= dt
		return false
	}
	c.Remaining = 0
	return true
}

// Reset restarts the countdown after a shot.
func (c *Cooldown) Reset() {
	c.Remaining = c.Total
}

// SetTotal changes the cooldown length, keeping Remaining in bounds.
func (c *Cooldown) SetTotal(total float64) {
	if total < 0 {
		total = 0
	}
	c.Total = total
	if c.Remaining > total {
		c.Remaining = total
	}
}

// Weapon is one weapon slot owned by the player.
type Weapon struct {
	Name     string
	Kind     ProjectileKind
	Cooldown Cooldown
	// Friction is copied onto every projectile this weapon fires.
	Friction float64
	Speed    float64
	Key      string
	// EquipKey toggles Equipped when pressed. Empty means the slot is fixed.
	EquipKey string
	Equipped bool
	// OffsetX/OffsetY place the muzzle origin relative to the owner, before
	// the owner's facing rotation is applied.
	OffsetX float64
	OffsetY float64
}

// Loadout is the fixed list of weapon slots carried by an entity.
type Loadout struct {
	Weapons []Weapon
}

// Weapon returns the slot with the given name.
func (l *Loadout) Weapon(name string) (*Weapon, bool) {
	if l == nil {
		return nil, false
	}
	for i := range l.Weapons {
		if l.Weapons[i].Name == name {
			return &l.Weapons[i], true
		}
	}
	return nil, false
}

var LoadoutComponent = NewComponent[Loadout]()
