// Package ebiten runs a coroutine scheduler inside an Ebiten game loop,
// with the Dear ImGui task inspector drawn on top.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/corotick/coro"
	"github.com/plus3/corotick/coro/debugui"
)

// Game implements ebiten.Game. Every Ebiten update is one scheduler tick.
type Game struct {
	Scheduler *coro.Scheduler
	Backend   *ebitenbackend.EbitenBackend
	Inspector *debugui.TaskInspector
}

// NewGame creates the ImGui window and wires the inspector to scheduler.
func NewGame(scheduler *coro.Scheduler, title string, width, height int) *Game {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)

	return &Game{
		Scheduler: scheduler,
		Backend:   backend,
		Inspector: debugui.NewTaskInspector(scheduler, 240),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.Backend.BeginFrame()
	g.Scheduler.Tick()
	g.Inspector.Render()
	g.Backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run blocks until the window is closed.
func (g *Game) Run() error {
	return ebiten.RunGame(g)
}
