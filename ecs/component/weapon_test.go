package component

import "testing"

func TestCooldownTick(t *testing.T) {
	cases := []struct {
		name        string
		total       float64
		dt          float64
		wantWaiting int
	}{
		{"binary_step", 0.125, 1.0 / 64, 7},
		{"sixty_tps", 0.1, 1.0 / 60, 5},
		{"sixty_tps_quarter", 0.25, 1.0 / 60, 14},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cd := NewCooldown(c.total)
			// two rounds: the second starts from Reset and must not carry drift
			for round := 0; round < 2; round++ {
				ticks := 0
				for !cd.Tick(c.dt) {
					ticks++
					if cd.Remaining < 0 || cd.Remaining > cd.Total {
						t.Fatalf("remaining %v out of [0, %v]", cd.Remaining, cd.Total)
					}
					if ticks > 100 {
						t.Fatal("cooldown never became ready")
					}
				}
				if ticks != c.wantWaiting {
					t.Fatalf("round %d: ready after %d waiting ticks, want %d", round, ticks, c.wantWaiting)
				}
				if cd.Remaining != 0 {
					t.Fatalf("ready cooldown should rest at 0, got %v", cd.Remaining)
				}

				cd.Reset()
				if cd.Remaining != cd.Total {
					t.Fatalf("reset remaining = %v, want %v", cd.Remaining, cd.Total)
				}
			}
		})
	}
}

func TestCooldownZeroTotalAlwaysReady(t *testing.T) {
	cd := NewCooldown(0)
	for i := 0; i < 3; i++ {
		if !cd.Tick(1.0 / 60) {
			t.Fatalf("zero cooldown not ready on tick %d", i)
		}
		cd.Reset()
	}
}

func TestCooldownSetTotalClampsRemaining(t *testing.T) {
	cd := NewCooldown(1)
	cd.SetTotal(0.25)
	if cd.Remaining != 0.25 || cd.Total != 0.25 {
		t.Fatalf("got %+v", cd)
	}
	cd.SetTotal(-1)
	if cd.Remaining != 0 || cd.Total != 0 {
		t.Fatalf("negative total should clamp to 0, got %+v", cd)
	}
}

func TestParseProjectileKind(t *testing.T) {
	cases := []struct {
		in   string
		want ProjectileKind
	}{
		{"bullet", ProjectileBullet},
		{"Weak_Bullet", ProjectileWeakBullet},
		{"weak-bullet", ProjectileWeakBullet},
		{" magnet ", ProjectileMagnet},
	}
	for _, c := range cases {
		got, err := ParseProjectileKind(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseProjectileKind("rocket"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestLoadoutWeaponLookup(t *testing.T) {
	l := &Loadout{Weapons: []Weapon{{Name: "gun"}, {Name: "magnet"}}}
	w, ok := l.Weapon("magnet")
	if !ok {
		t.Fatal("magnet slot not found")
	}
	w.Equipped = true
	if !l.Weapons[1].Equipped {
		t.Fatal("Weapon should return a pointer into the loadout")
	}
	if _, ok := l.Weapon("sword"); ok {
		t.Fatal("unexpected slot")
	}
}
