// Package terminal drives a session on a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

const DefaultFrameRate = 60

// number of past lengths shown after a round ends
const recentCount = 10

var (
	borderStyle = tcell.StyleDefault
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

type Terminal struct {
	screen  tcell.Screen
	session *game.Session
	pilot   *ai.Pilot
	quit    bool
}

// New creates a terminal frontend. pilot may be nil for human play.
func New(screen tcell.Screen, session *game.Session, pilot *ai.Pilot) *Terminal {
	return &Terminal{
		screen:  screen,
		session: session,
		pilot:   pilot,
	}
}

// Transform maps a grid cell to screen coordinates, leaving room for the
// status line and the border.
func (t *Terminal) Transform(pos types.Point) (int, int) {
	return pos.Col + 1, pos.Row + 2
}

// HandleEvent applies one tcell event. It returns false once the user asked
// to quit.
func (t *Terminal) HandleEvent(event tcell.Event) bool {
	switch evt := event.(type) {
	case *tcell.EventKey:
		switch evt.Key() {
		case tcell.KeyUp:
			t.session.Press(types.Up)
		case tcell.KeyDown:
			t.session.Press(types.Down)
		case tcell.KeyLeft:
			t.session.Press(types.Left)
		case tcell.KeyRight:
			t.session.Press(types.Right)
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
		case tcell.KeyRune:
			switch evt.Rune() {
			case 'w', 'k':
				t.session.Press(types.Up)
			case 's', 'j':
				t.session.Press(types.Down)
			case 'a', 'h':
				t.session.Press(types.Left)
			case 'd', 'l':
				t.session.Press(types.Right)
			case 'r':
				t.restart()
			case ' ':
				if !t.session.World().IsRunning() {
					t.restart()
				}
			case 'q':
				t.quit = true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return !t.quit
}

func (t *Terminal) restart() {
	t.session.Restart()
	if t.pilot != nil {
		t.pilot.Reset()
	}
}

// Frame advances the session by elapsed seconds and redraws.
func (t *Terminal) Frame(elapsed float64) {
	intent := types.None
	if t.pilot != nil {
		intent = t.pilot.Decide(t.session.World())
	}
	t.session.Frame(elapsed, intent)
	t.Draw()
}

func (t *Terminal) Draw() {
	world := t.session.World()
	grid := world.Grid()
	screen := t.screen
	screen.Clear()

	scores := t.session.Scoreboard()
	t.drawText(0, 0, textStyle, fmt.Sprintf("length %d  best %d  games %d  wins %d",
		world.Len(), scores.HighScore(), scores.GamesPlayed(), scores.Victories()))

	screen.SetContent(0, 1, '+', nil, borderStyle)
	screen.SetContent(1+grid.Cols, 1, '+', nil, borderStyle)
	screen.SetContent(0, 2+grid.Rows, '+', nil, borderStyle)
	screen.SetContent(1+grid.Cols, 2+grid.Rows, '+', nil, borderStyle)
	for i := 0; i < grid.Cols; i++ {
		screen.SetContent(1+i, 1, '-', nil, borderStyle)
		screen.SetContent(1+i, 2+grid.Rows, '-', nil, borderStyle)
	}
	for i := 0; i < grid.Rows; i++ {
		screen.SetContent(0, 2+i, '|', nil, borderStyle)
		screen.SetContent(1+grid.Cols, 2+i, '|', nil, borderStyle)
	}

	if food, ok := world.Food(); ok {
		x, y := t.Transform(food)
		screen.SetContent(x, y, '*', nil, foodStyle)
	}
	for _, part := range world.Body() {
		x, y := t.Transform(part)
		screen.SetContent(x, y, 'o', nil, bodyStyle)
	}
	x, y := t.Transform(world.Head())
	screen.SetContent(x, y, HeadRune(world.Facing()), nil, headStyle)

	if !world.IsRunning() {
		outcome := world.Outcome()
		t.drawText(0, 3+grid.Rows, textStyle, fmt.Sprintf("%s, length %d - r to restart, q to quit",
			outcome.Reason, outcome.Length))
		t.drawText(0, 4+grid.Rows, textStyle, "recent: "+manager.RecentLengths(scores.History(), recentCount))
	}
	screen.Show()
}

func (t *Terminal) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// HeadRune picks the glyph for the head facing dir.
func HeadRune(dir types.Direction) rune {
	switch dir {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	default:
		return '>'
	}
}

// Run polls input and advances the session at frameRate frames per second
// until the user quits or ctx is done. The screen is finalized on return.
func (t *Terminal) Run(ctx context.Context, frameRate int) error {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer func() {
		close(quit)
		t.screen.Fini()
	}()

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	last := time.Now()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if evt, isErr := event.(*tcell.EventError); isErr {
				return evt
			}
			if !t.HandleEvent(event) {
				return nil
			}
		case now := <-ticker.C:
			t.Frame(now.Sub(last).Seconds())
			last = now
		}
	}
}
