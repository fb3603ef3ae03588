// Command mandelgo is the interactive perturbation-renderer viewer.
// Flag parsing and the ebiten.RunGame call follow gintendo.go's
// main-package shape: parse flags, construct the core, hand it to
// ebiten.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/display"
	"github.com/lmeyer/mandelperturb/engine"
	"github.com/lmeyer/mandelperturb/palette"
)

var (
	width         = flag.Int("width", config.DefaultWidth, "Framebuffer width in pixels.")
	height        = flag.Int("height", config.DefaultHeight, "Framebuffer height in pixels.")
	workers       = flag.Int("workers", config.DefaultWorkers, "Worker pool size.")
	queueCapacity = flag.Int("queue_capacity", config.DefaultQueueCapacity, "Worker pool queue capacity.")
	maxIter       = flag.Int("max_iter", config.DefaultMaxIter, "Initial iteration ceiling.")
	centerRe      = flag.String("center_re", config.DefaultCenterRe, "Initial view center, real part (decimal string).")
	centerIm      = flag.String("center_im", config.DefaultCenterIm, "Initial view center, imaginary part (decimal string).")
	scale         = flag.String("scale", config.DefaultScale, "Initial world-space units per pixel (decimal string).")
	paletteFile   = flag.String("palette", "", "Path to a custom name=0xAARRGGBB palette file. Empty uses the built-in palette.")
)

func main() {
	flag.Parse()

	cfg := config.Config{
		Width:         *width,
		Height:        *height,
		Workers:       *workers,
		QueueCapacity: *queueCapacity,
		MaxIter:       *maxIter,
		CenterRe:      *centerRe,
		CenterIm:      *centerIm,
		Scale:         *scale,
		PaletteFile:   *paletteFile,
	}

	pal := palette.Default()
	if cfg.PaletteFile != "" {
		f, err := os.Open(cfg.PaletteFile)
		if err != nil {
			log.Fatalf("Couldn't open palette file: %v", err)
		}
		defer f.Close()

		loaded, err := palette.Parse(cfg.PaletteFile, f)
		if err != nil {
			log.Fatalf("Couldn't parse palette file: %v", err)
		}
		pal = loaded
	}

	eng, err := engine.New(cfg, pal)
	if err != nil {
		log.Fatalf("Invalid initial viewport: %v", err)
	}
	defer eng.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("mandelperturb")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := display.New(eng, cfg.Width, cfg.Height)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
