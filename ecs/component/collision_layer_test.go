package component

import "testing"

func TestProfileTable(t *testing.T) {
	cases := []struct {
		profile  Profile
		category Layer
		mask     Layer
	}{
		{ProfilePlayer, LayerPlayer, LayerDefault | LayerWalls | LayerMagnet | LayerMagnetPassthrough},
		{ProfileMagnet, LayerMagnet | LayerProjectiles, LayerDefault | LayerWalls | LayerProjectiles | LayerPlayer | LayerBullets},
		{ProfileBullet, LayerBullets | LayerProjectiles, LayerDefault | LayerWalls | LayerProjectiles | LayerMagnetPassthrough},
		{ProfileMagnetPassthrough, LayerMagnetPassthrough, LayerDefault | LayerWalls | LayerProjectiles | LayerPlayer | LayerBullets},
		{ProfileWalls, LayerWalls, AllLayers},
	}

	for _, c := range cases {
		t.Run(string(c.profile), func(t *testing.T) {
			layer, err := ProfileFor(c.profile)
			if err != nil {
				t.Fatalf("ProfileFor: %v", err)
			}
			if layer.Category != uint32(c.category) {
				t.Fatalf("category = %b, want %b", layer.Category, c.category)
			}
			if layer.Mask != uint32(c.mask) {
				t.Fatalf("mask = %b, want %b", layer.Mask, c.mask)
			}
		})
	}
}

func TestProfileForUnknown(t *testing.T) {
	if _, err := ProfileFor("ghost"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if _, err := ProfileFor("BULLET"); err != nil {
		t.Fatalf("profile names should be case-insensitive: %v", err)
	}
}

func TestProfileCollisions(t *testing.T) {
	cases := []struct {
		a, b Profile
		want bool
	}{
		{ProfileBullet, ProfilePlayer, false},
		{ProfileMagnet, ProfilePlayer, true},
		{ProfileMagnet, ProfileMagnetPassthrough, false},
		{ProfileBullet, ProfileMagnetPassthrough, true},
		{ProfilePlayer, ProfileMagnetPassthrough, true},
		{ProfileBullet, ProfileBullet, true},
		{ProfileBullet, ProfileMagnet, true},
		{ProfileWalls, ProfilePlayer, true},
		{ProfileWalls, ProfileMagnet, true},
		{ProfileWalls, ProfileBullet, true},
		{ProfileWalls, ProfileWalls, true},
	}

	for _, c := range cases {
		t.Run(string(c.a)+"_vs_"+string(c.b), func(t *testing.T) {
			a := MustProfile(c.a)
			b := MustProfile(c.b)
			if got := a.Collides(b); got != c.want {
				t.Fatalf("%s collides %s = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := b.Collides(a); got != c.want {
				t.Fatalf("collision must be symmetric: %s collides %s = %v", c.b, c.a, got)
			}
		})
	}
}

func TestCollisionLayerDefaults(t *testing.T) {
	var zero CollisionLayer
	n := zero.Normalized()
	if n.Category != uint32(LayerDefault) {
		t.Fatalf("zero category should default to LayerDefault, got %b", n.Category)
	}
	if n.Mask != ^uint32(0) {
		t.Fatalf("zero mask should collide with everything, got %b", n.Mask)
	}

	f := MustProfile(ProfileBullet).Filter()
	if f.Categories != uint(LayerBullets|LayerProjectiles) {
		t.Fatalf("filter categories = %b", f.Categories)
	}
	if f.Group != 0 {
		t.Fatalf("filter group = %d, want 0", f.Group)
	}
}
