package entity

import (
	"fmt"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

const PlayerPrefab = "player.yaml"

// NewPlayer builds the player and its weapon loadout. Non-empty keys in
// controls replace the prefab bindings.
func NewPlayer(w *ecs.World, controls component.Controls) (ecs.Entity, error) {
	player, err := BuildEntity(w, PlayerPrefab)
	if err != nil {
		return 0, err
	}

	current, ok := ecs.Get(w, player, component.ControlsComponent)
	if !ok {
		current = &component.Controls{}
		if err := ecs.Add(w, player, component.ControlsComponent, current); err != nil {
			return 0, fmt.Errorf("player: add controls: %w", err)
		}
	}
	overrideKey(&current.Up, controls.Up)
	overrideKey(&current.Down, controls.Down)
	overrideKey(&current.Left, controls.Left)
	overrideKey(&current.Right, controls.Right)

	return player, nil
}

func NewPlayerAt(w *ecs.World, controls component.Controls, x, y float64) (ecs.Entity, error) {
	player, err := NewPlayer(w, controls)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, player, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return player, nil
}

func overrideKey(dst *string, key string) {
	if key != "" {
		*dst = key
	}
}
