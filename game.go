package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/magnetgun/config"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/ecs/render"
	"github.com/milk9111/magnetgun/ecs/scene"
	"github.com/milk9111/magnetgun/ecs/system"
	"github.com/milk9111/magnetgun/prefabs"
	"go.uber.org/zap"
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type Game struct {
	cfg   *config.Config
	scene *scene.Scene
	input *Input

	renderer *render.Renderer
	hud      *render.HUD
	pauseUI  *ebitenui.UI
	paused   bool
	quit     bool

	watcher   *prefabs.Watcher
	lastFrame time.Time

	log *zap.Logger
}

func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	sc, err := scene.New(scene.Options{
		Dt: cfg.Simulation.Dt(),
		Controls: component.Controls{
			Up:    cfg.Controls.Up,
			Down:  cfg.Controls.Down,
			Left:  cfg.Controls.Left,
			Right: cfg.Controls.Right,
		},
	}, log)
	if err != nil {
		return nil, err
	}

	if err := validateKeys(boundKeys(cfg, sc)); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		scene:    sc,
		input:    NewInput(cfg.Window.Width, cfg.Window.Height),
		renderer: render.NewRenderer(),
		hud:      render.NewHUD(),
		log:      log.Named("game"),
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Debug.HotReload {
		w, err := prefabs.NewWatcher(prefabs.DefaultQuiet, prefabs.Dir)
		if err != nil {
			g.log.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
			g.log.Info("watching prefabs", zap.String("dir", prefabs.Dir))
		}
	}

	return g, nil
}

// boundKeys lists every key name the game reacts to, labelled for errors.
func boundKeys(cfg *config.Config, sc *scene.Scene) map[string]string {
	keys := map[string]string{"controls.pause": cfg.Controls.Pause}
	if c, ok := ecs.Get(sc.World, sc.Player, component.ControlsComponent); ok {
		keys["controls.up"] = c.Up
		keys["controls.down"] = c.Down
		keys["controls.left"] = c.Left
		keys["controls.right"] = c.Right
	}
	if l, ok := ecs.Get(sc.World, sc.Player, component.LoadoutComponent); ok {
		for _, wpn := range l.Weapons {
			keys["weapon "+wpn.Name+" key"] = wpn.Key
			keys["weapon "+wpn.Name+" equip_key"] = wpn.EquipKey
		}
	}
	return keys
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	if g.input.JustPressed(g.cfg.Controls.Pause) {
		if g.paused {
			g.resume()
		} else {
			g.pause()
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollPrefabChanges()
	g.scene.Step(g.input.Snapshot())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	frameDt := g.scene.Dt()
	if !g.lastFrame.IsZero() {
		frameDt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	in := g.input.Snapshot()
	if !g.paused {
		g.scene.Present(in, frameDt)
	}

	screen.Fill(backgroundColor)
	g.renderer.Draw(g.scene.World, screen)

	if g.cfg.Debug.Physics {
		render.DrawPhysicsDebug(g.scene.Space(), g.scene.World, screen)
	}
	if g.cfg.Debug.HUD {
		g.hud.Draw(screen, system.CollectStats(g.scene.World), ebiten.ActualFPS())
	}

	if g.paused {
		g.pauseUI.Draw(screen)
		return
	}
	g.renderer.DrawCrosshair(screen, in)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) pause() {
	g.paused = true
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	g.log.Debug("paused", zap.Uint64("step", g.scene.Steps()))
}

func (g *Game) resume() {
	g.paused = false
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	g.log.Debug("resumed")
}

// pollPrefabChanges applies any prefab edits reported since the last tick
// without blocking.
func (g *Game) pollPrefabChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.scene.ReloadPrefab(change.Name); err != nil {
				g.log.Warn("prefab reload failed", zap.String("path", change.Path), zap.Error(err))
			}
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}
