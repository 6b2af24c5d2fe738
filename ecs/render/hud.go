package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/magnetgun/ecs/system"
	"golang.org/x/image/font/basicfont"
)

// HUD prints simulation counters in the top-left corner.
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, st system.Stats, fps float64) {
	if h == nil || screen == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudText(st, fps), h.face, op)
}

func hudText(st system.Stats, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\n", fps)
	fmt.Fprintf(&b, "bullets: %d  weak: %d  magnets: %d\n", st.Bullets, st.WeakBullets, st.Magnets)
	switch st.Magnet {
	case system.MagnetMoving, system.MagnetAging:
		fmt.Fprintf(&b, "magnet: %s %.2fs\n", st.Magnet, st.MagnetAge)
	default:
		fmt.Fprintf(&b, "magnet: %s\n", st.Magnet)
	}
	for _, wpn := range st.Weapons {
		mark := " "
		if wpn.Equipped {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-10s %.2f/%.2f\n", mark, wpn.Name, wpn.Remaining, wpn.Total)
	}
	return b.String()
}
