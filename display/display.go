// Package display is the concrete ebiten.Game binding: the only
// package besides cmd/mandelgo that imports ebiten directly. It polls keyboard/mouse
// state into input.Event values and drives engine.Engine.Step, then
// blits the engine's framebuffer snapshot into the displayed image
// each frame. Modeled on console.Bus's Update/Draw/Layout in the
// teacher pack, generalized from a PPU pixel source to this renderer's
// framebuffer, and on console's controller.go for the "poll key state
// into a bitfield once per Update" idiom.
package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lmeyer/mandelperturb/engine"
	"github.com/lmeyer/mandelperturb/input"
)

// Game adapts an *engine.Engine to ebiten's Game interface.
type Game struct {
	eng           *engine.Engine
	width, height int

	rgba []byte // scratch buffer reused across frames, RGBA byte order
}

// New builds a Game around eng, sized for a width x height window.
func New(eng *engine.Engine, width, height int) *Game {
	return &Game{eng: eng, width: width, height: height}
}

// Update polls host input, translates it into input.Event values, and
// advances the engine by one Step. Returning ebiten.Termination is how
// an ebiten.Game signals a clean shutdown; it is emitted once the
// engine observes a Quit event.
func (g *Game) Update() error {
	var events []input.Event

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		cx, cy := ebiten.CursorPosition()
		events = append(events, input.Event{Kind: input.Zoom, Delta: wheelY, CursorX: cx, CursorY: cy})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		events = append(events, input.Event{Kind: input.IterBump, Delta: 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		events = append(events, input.Event{Kind: input.IterBump, Delta: -1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyAltLeft) || inpututil.IsKeyJustPressed(ebiten.KeyAltRight) {
		events = append(events, input.Event{Kind: input.ToggleInfo})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		events = append(events, input.Event{Kind: input.Redraw})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, input.Event{Kind: input.Quit})
	}

	g.eng.Step(events)

	if g.eng.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw copies the engine's framebuffer snapshot into screen,
// converting from the renderer's native ARGB8888 (B,G,R,A) byte order
// into the RGBA byte order ebiten.Image.WritePixels expects.
func (g *Game) Draw(screen *ebiten.Image) {
	pixels, w, h := g.eng.Snapshot()

	if len(g.rgba) != len(pixels) {
		g.rgba = make([]byte, len(pixels))
	}
	for i := 0; i+3 < len(pixels); i += 4 {
		b, gr, r, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		g.rgba[i] = r
		g.rgba[i+1] = gr
		g.rgba[i+2] = b
		g.rgba[i+3] = a
	}
	screen.WritePixels(g.rgba)

	if g.eng.InfoVisible() {
		cre, cim := g.eng.View.CenterRe.Float64(), g.eng.View.CenterIm.Float64()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"center=(%g, %g)\nscale=%g\nmax_iter=%d\nsize=%dx%d",
			cre, cim, g.eng.View.Scale.Float64(), g.eng.View.MaxIter, w, h))
	}
}

// Layout returns the constant configured resolution, forcing ebiten to
// scale the displayed surface rather than reflow it on window resize -
// the same contract console.Bus.Layout follows for the PPU's fixed
// resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
