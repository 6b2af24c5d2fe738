package system

import (
	"testing"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

func TestLifetimeExpiry(t *testing.T) {
	tests := []struct {
		name      string
		lifetime  float64
		dt        float64
		wantTicks int
	}{
		{"bullet", 8, 0.5, 16},
		{"weak_bullet", 5, 0.5, 10},
		{"uneven_step", 1, 0.375, 3},
		{"sixty_tps", 8, 1.0 / 60, 480},
		{"sixty_tps_short", 0.1, 1.0 / 60, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			lt := component.NewLifetime(tc.lifetime)
			add(t, w, e, component.LifetimeComponent, &lt)

			sys := NewLifetimeSystem(nil)
			tick := &ecs.Tick{Dt: tc.dt}
			for i := 1; i <= tc.wantTicks; i++ {
				sys.Update(w, tick)
				alive := ecs.IsAlive(w, e)
				if i < tc.wantTicks && !alive {
					t.Fatalf("despawned early at tick %d", i)
				}
				if i == tc.wantTicks && alive {
					t.Fatalf("still alive at tick %d", i)
				}
			}
		})
	}
}

func TestLifetimeLeavesOtherEntitiesAlone(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	add(t, w, player, component.PlayerTagComponent, &component.PlayerTag{})

	NewLifetimeSystem(nil).Update(w, &ecs.Tick{Dt: 100})

	if !ecs.IsAlive(w, player) {
		t.Fatal("entity without a lifetime was removed")
	}
}
