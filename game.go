package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rollrunner/assets"
	"github.com/milk9111/rollrunner/ecs/system"
	"github.com/milk9111/rollrunner/input"
	"github.com/milk9111/rollrunner/levels"
	"github.com/milk9111/rollrunner/prefabs"
	"github.com/milk9111/rollrunner/scene"
	"github.com/milk9111/rollrunner/session"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	defaultLevel = "level1.json"
)

type Game struct {
	levelName string
	debug     bool

	session  *session.Session
	keyboard *input.Keyboard
	watcher  *prefabs.Watcher
	scene    *scene.Scene
	render   *system.RenderSystem
	hud      *HUD

	paused bool
	ui     *ebitenui.UI
}

// NewGame builds the session once and loads the first level. The session and
// its timer survive every restart.
func NewGame(levelName string, debug, mute, watch bool) (*Game, error) {
	if levelName == "" {
		levelName = defaultLevel
	}
	if !strings.HasSuffix(levelName, ".json") {
		levelName += ".json"
	}

	spec, err := prefabs.LoadSessionSpec()
	if err != nil {
		return nil, err
	}
	defs, err := spec.SoundDefs()
	if err != nil {
		return nil, err
	}
	sess, err := session.New(assets.AudioFactory{}, defs, spec.Music)
	if err != nil {
		return nil, err
	}
	sess.Sounds.SetMuted(mute)

	g := &Game{
		levelName: levelName,
		debug:     debug,
		session:   sess,
		keyboard:  input.NewKeyboard(),
		render:    system.NewRenderSystem(),
		hud:       NewHUD(),
	}
	g.ui = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart rebuilds the world from the level and prefabs on disk.
func (g *Game) restart() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}

	var logf func(string, ...any)
	if g.debug {
		logf = log.Printf
	}
	next, err := scene.New(lvl, scene.Options{
		Input:  g.keyboard,
		Sounds: g.session,
		Logf:   logf,
		Camera: true,
	})
	if err != nil {
		return err
	}

	g.scene.Close()
	g.scene = next
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.session.StopTimer()
	} else {
		g.session.ResumeTimer()
	}
}

func (g *Game) toggleMute() {
	g.session.Sounds.SetMuted(!g.session.Sounds.Muted())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			log.Printf("restart: %v", err)
		}
	}
	g.reloadChanged()

	g.scene.Update()
	g.session.Tick(scene.Step)
	return nil
}

func (g *Game) reloadChanged() {
	names, err := g.watcher.Poll()
	if err != nil {
		log.Printf("hot reload: %v", err)
	}
	for _, name := range names {
		if name != g.levelName && filepath.Ext(name) == ".json" {
			continue
		}
		log.Printf("reloading after change to %s", name)
		if err := g.restart(); err != nil {
			log.Printf("reload: %v", err)
		}
		return
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.scene.World, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.scene.Physics.Space(), g.scene.World, screen)
		system.DrawPlayerStateDebug(g.scene.World, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 10, baseHeight-20)
	}

	g.hud.Draw(screen, g.session)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Close() {
	g.scene.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
