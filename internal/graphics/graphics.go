package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Width     int32
	Height    int32
	Title     string
	TargetFPS int32
}

var background = rl.NewColor(28, 30, 36, 255)

// Run opens the window and runs the main loop. Each frame it calls update with the frame time in
// seconds, then clears the screen and calls draw. This keeps the graphics layer separate from the
// simulation and the terminal.
// ESC toggles the terminal rather than quitting; close via the window button.
func Run(win Window, update func(frameSeconds float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if win.TargetFPS > 0 {
		rl.SetTargetFPS(win.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
