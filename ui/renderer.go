package ui

import (
	"fmt"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Space for the status line above the grid
)

var (
	headColor = rl.NewColor(60, 220, 90, 255)
	bodyColor = rl.NewColor(30, 150, 60, 255)
	foodColor = rl.Red
	eyeColor  = rl.Black
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	session      *game.Session
	pilot        *ai.Pilot
}

// NewRenderer draws session into the current raylib window. pilot may be
// nil for human play.
func NewRenderer(session *game.Session, pilot *ai.Pilot) *Renderer {
	r := &Renderer{session: session, pilot: pilot}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	grid := r.session.World().Grid()
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - statusHeight

	cellW := availableWidth / int32(grid.Cols)
	cellH := availableHeight / int32(grid.Rows)
	r.cellSize = min(cellW, cellH)

	// Center the grid below the status line
	r.offsetX = (r.screenWidth - r.cellSize*int32(grid.Cols)) / 2
	r.offsetY = borderPadding + statusHeight + (availableHeight-r.cellSize*int32(grid.Rows))/2
}

// Run drives the session until the window is closed or Q is pressed.
func (r *Renderer) Run() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsWindowResized() {
			r.UpdateDimensions()
		}

		world := r.session.World()
		if rl.IsKeyPressed(rl.KeyR) || (!world.IsRunning() && rl.IsKeyPressed(rl.KeySpace)) {
			r.session.Restart()
			if r.pilot != nil {
				r.pilot.Reset()
			}
		}

		intent := pollIntent()
		if r.pilot != nil {
			intent = r.pilot.Decide(world)
		}
		r.session.Frame(float64(rl.GetFrameTime()), intent)

		r.Draw()
	}
}

func pollIntent() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.Up
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.Down
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.Left
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.Right
	}
	return types.None
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.Col)*r.cellSize, r.offsetY + int32(p.Row)*r.cellSize
}

func (r *Renderer) Draw() {
	world := r.session.World()
	grid := world.Grid()
	scores := r.session.Scoreboard()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := int32(20)
	rl.DrawText(fmt.Sprintf("Length: %d   Best: %d   Games: %d   Wins: %d",
		world.Len(), scores.HighScore(), scores.GamesPlayed(), scores.Victories()),
		borderPadding, borderPadding, fontSize, rl.White)

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1,
		r.cellSize*int32(grid.Cols)+2, r.cellSize*int32(grid.Rows)+2, rl.DarkGray)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x, y := r.cell(types.Point{Row: row, Col: col})
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	if food, ok := world.Food(); ok {
		x, y := r.cell(food)
		rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, float32(r.cellSize)/3, foodColor)
	}

	for _, part := range world.Body() {
		x, y := r.cell(part)
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, bodyColor)
	}

	x, y := r.cell(world.Head())
	rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, headColor)
	r.drawEye(x, y, world.Facing())

	if !world.IsRunning() {
		r.drawSummary(world.Outcome(), scores.HighScore(), manager.RecentLengths(scores.History(), 10))
	}

	rl.EndDrawing()
}

// drawEye marks the side of the head the snake is facing.
func (r *Renderer) drawEye(x, y int32, dir types.Direction) {
	size := max(r.cellSize/5, 2)
	cx := x + r.cellSize/2 - size/2
	cy := y + r.cellSize/2 - size/2
	delta := dir.Delta()
	cx += int32(delta.Col) * r.cellSize / 4
	cy += int32(delta.Row) * r.cellSize / 4
	rl.DrawRectangle(cx, cy, size, size, eyeColor)
}

func (r *Renderer) drawSummary(outcome types.Outcome, best int, recent string) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.6))

	title := "GAME OVER"
	if outcome.Reason == types.Victory {
		title = "YOU WIN"
	}
	lines := []string{
		title,
		fmt.Sprintf("%s - final length %d (best %d)", outcome.Reason, outcome.Length, best),
		"Recent: " + recent,
		"SPACE to play again, Q to quit",
	}

	fontSize := int32(24)
	y := r.screenHeight/2 - int32(len(lines))*fontSize
	for _, line := range lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, (r.screenWidth-w)/2, y, fontSize, rl.White)
		y += fontSize * 2
	}
}
