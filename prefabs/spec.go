package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec lays out the static terrain of the play area.
type ArenaSpec struct {
	Name        string      `yaml:"name"`
	Walls       []BlockSpec `yaml:"walls"`
	Passthrough []BlockSpec `yaml:"magnet_passthrough"`
	WallColor   YAMLColor   `yaml:"wall_color"`
	BlockColor  YAMLColor   `yaml:"block_color"`
}

// BlockSpec is an axis-aligned block centered on X, Y.
type BlockSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor decodes "#rrggbb", "#rrggbbaa" or a CSS color name.
type YAMLColor struct {
	color.Color
}

// RGBAColor returns the color as color.RGBA, white when unset.
func (c YAMLColor) RGBAColor() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	rgba := c.RGBAColor()
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A), nil
}

// ParseColor accepts hex notation or a CSS color name.
func ParseColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
