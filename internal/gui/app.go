// Package gui is the desktop viewer: a raylib window drawing the
// boundary and bodies at 60 fps while the simulation steps at a fixed
// dt per frame.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/sim"
	"github.com/san-kum/colsim/internal/vec"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	colBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	colOutline = rl.NewColor(255, 255, 255, 255) // Bright White
	colText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	colTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	colWall    = rl.NewColor(80, 80, 80, 255)
)

const (
	windowW = 1280
	windowH = 720
	margin  = 60
)

// App owns the window loop for one simulation.
type App struct {
	sim     *sim.Simulation
	initial []*body.Body
	dt      float64
	title   string
	running bool

	// World-to-screen mapping, aspect preserved and centered.
	scale float64
	offX  float64
	offY  float64
}

func NewApp(s *sim.Simulation, dt float64, title string) *App {
	a := &App{sim: s, dt: dt, title: title, running: true}

	bodies := s.Bodies()
	a.initial = make([]*body.Body, len(bodies))
	for i, b := range bodies {
		a.initial[i] = b.Clone()
	}

	bounds := s.Bounds()
	sx := float64(windowW-2*margin) / bounds.Width
	sy := float64(windowH-2*margin) / bounds.Height
	a.scale = math.Min(sx, sy)
	a.offX = (windowW - bounds.Width*a.scale) / 2
	a.offY = (windowH - bounds.Height*a.scale) / 2
	return a
}

// Run opens the window and blocks until the user quits. Escape is the
// default raylib exit key; Q works too.
func (a *App) Run() {
	rl.InitWindow(windowW, windowH, "colsim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		a.update()
		a.draw()
	}
}

func (a *App) update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}
	if a.running {
		a.sim.Step(a.dt)
	}
}

func (a *App) reset() {
	fresh := make([]*body.Body, len(a.initial))
	for i, b := range a.initial {
		fresh[i] = b.Clone()
	}
	s, err := sim.New(fresh, a.sim.Bounds())
	if err != nil {
		return
	}
	a.sim = s
}

func (a *App) toScreen(p vec.Vec2) (float32, float32) {
	x := a.offX + p.X*a.scale
	y := float64(windowH) - a.offY - p.Y*a.scale
	return float32(x), float32(y)
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)
	a.drawScene()
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawScene() {
	bounds := a.sim.Bounds()
	x0, y0 := a.toScreen(vec.Vec2{X: 0, Y: bounds.Height})
	rl.DrawRectangleLines(int32(x0), int32(y0), int32(bounds.Width*a.scale), int32(bounds.Height*a.scale), colWall)

	for _, b := range a.sim.Bodies() {
		x, y := a.toScreen(b.Pos)
		r := float32(b.Radius * a.scale)

		// Brightness tracks speed so the eye can follow the energy.
		val := uint8(math.Min(120+b.Vel.Length()*45, 255))
		rl.DrawCircleV(rl.NewVector2(x, y), r, rl.NewColor(val, val, val, 255))
		rl.DrawCircleLines(int32(x), int32(y), r, colOutline)
	}
}

func (a *App) drawHUD() {
	rl.DrawText("colsim", 30, 30, 24, colOutline)
	rl.DrawText(fmt.Sprintf(":: %s", a.title), 130, 34, 16, colText)

	status := "RUNNING"
	col := colOutline
	if !a.running {
		status = "PAUSED"
		col = colTextDim
	}
	rl.DrawText(status, windowW-130, 30, 16, col)

	rl.DrawText(fmt.Sprintf("t     %8.2f", a.sim.Time()), 30, 74, 16, colText)
	rl.DrawText(fmt.Sprintf("E     %8.4f", a.sim.Energy()), 30, 96, 16, colText)
	rl.DrawText(fmt.Sprintf("|p|   %8.4f", a.sim.Momentum().Length()), 30, 118, 16, colText)
	rl.DrawText(fmt.Sprintf("bodies %d   collisions %d", len(a.sim.Bodies()), a.sim.Collisions()), 30, 140, 16, colText)

	rl.DrawText("[SPACE] PAUSE  [R] RESET  [ESC/Q] QUIT", windowW-400, windowH-40, 14, colTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, windowH-40, 14, colTextDim)
}
