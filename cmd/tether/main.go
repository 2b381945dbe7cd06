package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tether/game"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	cameraLerp   = 0.1
)

var chaserPalette = []color.RGBA{
	{0xe4, 0x5d, 0x5d, 0xff},
	{0xe4, 0xa1, 0x5d, 0xff},
	{0xc9, 0x5d, 0xe4, 0xff},
	{0x5d, 0xe4, 0x8f, 0xff},
	{0x5d, 0x9e, 0xe4, 0xff},
	{0xe4, 0xe4, 0x5d, 0xff},
}

// App drives one local run: the mouse drags the rope's head, the camera
// trails the head, and R restarts after a game over.
type App struct {
	state *game.State
	cam   game.Vec2
}

func newApp() *App {
	return &App{state: game.New(time.Now().UnixNano())}
}

func (a *App) worldView() game.Rect {
	return game.Rect{
		Min: game.Vec2{X: a.cam.X - screenWidth/2, Y: a.cam.Y - screenHeight/2},
		Max: game.Vec2{X: a.cam.X + screenWidth/2, Y: a.cam.Y + screenHeight/2},
	}
}

func (a *App) toScreen(p game.Vec2) (float32, float32) {
	return float32(p.X - a.cam.X + screenWidth/2), float32(p.Y - a.cam.Y + screenHeight/2)
}

func (a *App) toWorld(x, y int) game.Vec2 {
	return game.Vec2{
		X: float64(x) + a.cam.X - screenWidth/2,
		Y: float64(y) + a.cam.Y - screenHeight/2,
	}
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.state = game.New(time.Now().UnixNano())
		return nil
	}

	mx, my := ebiten.CursorPosition()
	game.Step(a.state, game.Input{
		Drag:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pointer: a.toWorld(mx, my),
		View:    a.worldView(),
	})

	a.cam = a.cam.Lerp(a.state.Rope.Points[0], cameraLerp)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	rope := &a.state.Rope
	thick := rope.Thickness

	for i, p := range rope.Points {
		r := thick / 2
		if i == 0 || i == len(rope.Points)-1 {
			r = thick * 2 // head and tail read as knobs
		}
		x, y := a.toScreen(p)
		vector.DrawFilledCircle(screen, x, y, float32(r), color.White, true)
	}

	for _, c := range a.state.Chasers {
		x, y := a.toScreen(c.Pos)
		col := chaserPalette[int(c.Hue)%len(chaserPalette)]
		vector.DrawFilledCircle(screen, x, y, float32(c.Radius), col, true)
	}

	hud := fmt.Sprintf("Score: %d", a.state.Score)
	if a.state.GameOver {
		hud += "\nGAME OVER - press R to restart"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (a *App) Layout(ow, oh int) (int, int) { return screenWidth, screenHeight }

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tether")
	ebiten.SetTPS(40)
	if err := ebiten.RunGame(newApp()); err != nil {
		log.Fatal(err)
	}
}
