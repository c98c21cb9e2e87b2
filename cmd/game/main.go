package main

import (
	"flag"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"puzzle-engine/internal/bodydef"
	"puzzle-engine/internal/console"
	"puzzle-engine/internal/debug"
	"puzzle-engine/internal/graphics"
	"puzzle-engine/internal/logger"
	"puzzle-engine/internal/physconfig"
	"puzzle-engine/internal/physics"
	"puzzle-engine/internal/render"
	"puzzle-engine/internal/sandbox"
	"puzzle-engine/internal/terminal"
)

func main() {
	configPath := flag.String("config", physconfig.ConfigPath, "physics config file")
	flag.Parse()

	log := logger.New()
	physics.SetLogger(log)

	cfg, err := physconfig.LoadFrom(*configPath)
	log.Errorf("load "+*configPath, err)

	presets, err := bodydef.LoadDir(cfg.BodiesDir)
	log.Errorf("load presets", err)

	sb := sandbox.New(cfg, presets, log)
	sb.ConfigPath = *configPath
	term := terminal.New(log, sb.Commands)
	stdin := console.Start(os.Stdin)
	dbg := debug.New(cfg.ShowFPS)
	view := render.NewView(float32(cfg.WindowWidth), float32(cfg.WindowHeight))

	update := func(frameSeconds float32) {
		view.Width, view.Height = float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		for _, line := range stdin.Drain() {
			term.Submit(line)
		}
		term.Update()
		sb.HandleInput(view, !term.IsOpen())
		sb.Tick(frameSeconds)
	}
	draw := func() {
		sb.Draw(view)
		term.Draw()
		dbg.Draw(sb.Selected, sb.Paused())
	}
	graphics.Run(graphics.Window{
		Width:     cfg.WindowWidth,
		Height:    cfg.WindowHeight,
		Title:     cfg.WindowTitle,
		TargetFPS: cfg.TargetFPS,
	}, update, draw)
}
