// Package spriterun implements Sprite Run, an endless runner where the
// sprite jumps over obstacles that scroll in faster and faster.
//
// The Controller holds the simulation and talks to its frontend only
// through the collaborator interfaces in collaborators.go. Game couples a
// Controller with a Scene for terminal frontends.
package spriterun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
)

// ID is the identifier used for score storage.
const ID = "spriterun"

// Visual characters for rendering
const (
	SpriteChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Minimum terminal size the playfield can be drawn in.
const (
	minScreenW = 30
	minScreenH = 10
)

// Game is a Sprite Run session bound to a terminal Scene.
type Game struct {
	ctrl  *Controller
	scene *Scene
	cfg   config.Settings
}

// New creates a game in the Idle phase with the start overlay shown.
// opts.Renderer and opts.Display are replaced by the game's scene.
func New(cfg config.Settings, opts Options) *Game {
	scene := NewScene()
	opts.Renderer = scene
	opts.Display = scene

	g := &Game{
		ctrl:  NewController(cfg, opts),
		scene: scene,
		cfg:   cfg,
	}
	g.ctrl.Open()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sprite Run"
}

// Controller exposes the underlying session.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// HandleInput applies the actions of one input frame immediately.
// Restart is applied before Activate.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.ctrl.Restart()
	}
	if in.Has(core.ActionActivate) {
		g.ctrl.Activate()
	}
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	g.ctrl.Tick()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.scene.score,
		HighScore: g.scene.highScore,
		Running:   g.ctrl.Phase() == PhaseRunning,
		GameOver:  g.ctrl.Phase() == PhaseGameOver,
	}
}

// layout maps world coordinates to screen cells.
type layout struct {
	groundY int     // Row of the ground line
	scaleX  float64 // Cells per world unit horizontally
	scaleY  float64 // Rows per world unit vertically
}

func (g *Game) layout(dst *core.Screen) layout {
	groundY := dst.Height() - 2
	return layout{
		groundY: groundY,
		scaleX:  float64(dst.Width()) / g.cfg.Lane.Width,
		scaleY:  float64(groundY-2) / g.cfg.Lane.Height,
	}
}

// rect converts a world box given by left edge, height above ground and size to cells.
func (l layout) rect(x, y, w, h float64) core.Rect {
	left := int(math.Floor(x * l.scaleX))
	right := int(math.Ceil((x + w) * l.scaleX))
	// Row 0 belongs to the HUD
	top := core.Clamp(l.groundY-int(math.Ceil((y+h)*l.scaleY)), 1, l.groundY)
	bottom := l.groundY - int(math.Floor(y*l.scaleY))
	return core.NewRect(left, top, core.Max(1, right-left), core.Max(1, bottom-top))
}

// Render draws the current scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	l := g.layout(dst)

	// Ground
	dst.DrawHLine(0, l.groundY, dst.Width(), GroundChar, core.ColorGray)

	// Obstacles
	for _, x := range g.scene.obstacles {
		r := l.rect(x, 0, g.cfg.Obstacles.Width, g.cfg.Obstacles.Height)
		dst.DrawRect(r, ObstacleChar, core.ColorOrange)
	}

	// Sprite
	s := g.cfg.Sprite
	dst.DrawRect(l.rect(s.X, g.scene.spriteY, s.Width, s.Height), SpriteChar, core.ColorBrightGreen)

	// HUD
	dst.DrawTextColor(2, 0, g.Title(), core.ColorCyan)
	hud := fmt.Sprintf("HI %s  %s", FormatScore(g.scene.highScore), FormatScore(g.scene.score))
	dst.DrawTextColor(dst.Width()-len(hud)-2, 0, hud, core.ColorBrightWhite)

	if title, action, visible := g.scene.Overlay(); visible {
		g.drawOverlay(dst, title, action)
	}
}

// drawOverlay draws the message box in the center of the screen.
func (g *Game) drawOverlay(dst *core.Screen, title, action string) {
	button := "[ " + action + " ]"
	hint := "space: start/jump  r: restart"

	boxW := core.Max(len(hint), core.Max(len(title), len(button))) + 4
	boxH := 7
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, button, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+5, hint, core.ColorGray)
}
