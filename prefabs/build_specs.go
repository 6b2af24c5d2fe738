package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	StopSpeed    float64 `yaml:"stop_speed"`
}

type ControlsComponentSpec struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Color  YAMLColor `yaml:"color"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Zoom       float64 `yaml:"zoom"`
}

type PhysicsBodyComponentSpec struct {
	// Kind is dynamic, kinematic or static.
	Kind         string  `yaml:"kind"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Elasticity   float64 `yaml:"elasticity"`
	LockRotation bool    `yaml:"lock_rotation"`
}

// CollisionLayerComponentSpec names a profile, or gives raw bits when Profile
// is empty.
type CollisionLayerComponentSpec struct {
	Profile  string `yaml:"profile"`
	Category uint32 `yaml:"category"`
	Mask     uint32 `yaml:"mask"`
}

type WeaponComponentSpec struct {
	Name       string  `yaml:"name"`
	Projectile string  `yaml:"projectile"`
	Cooldown   float64 `yaml:"cooldown"`
	Friction   float64 `yaml:"friction"`
	Speed      float64 `yaml:"speed"`
	Key        string  `yaml:"key"`
	EquipKey   string  `yaml:"equip_key"`
	Equipped   *bool   `yaml:"equipped"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
}

type LoadoutComponentSpec struct {
	Weapons []WeaponComponentSpec `yaml:"weapons"`
}

type ProjectileComponentSpec struct {
	Kind string `yaml:"kind"`
	// MuzzleOffset is how far along the aim direction the projectile spawns.
	MuzzleOffset float64 `yaml:"muzzle_offset"`
	// Attracted marks projectiles the magnet pulls on.
	Attracted bool `yaml:"attracted"`
}

type LifetimeComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

type MagnetComponentSpec struct {
	Strength    float64 `yaml:"strength"`
	SettleSpeed float64 `yaml:"settle_speed"`
	AgingStep   float64 `yaml:"aging_step"`
	AliveMax    float64 `yaml:"alive_max"`
}

// LoadLoadoutSpec reads only the loadout of an entity prefab.
func LoadLoadoutSpec(filename string) (LoadoutComponentSpec, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return LoadoutComponentSpec{}, err
	}
	return DecodeComponentSpec[LoadoutComponentSpec](spec.Components["loadout"])
}
