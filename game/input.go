package game

import "gridsnake/game/types"

// IntentLatch keeps the most recent direction key press until it is taken,
// so input can be polled at frame rate while the snake moves at tick rate.
type IntentLatch struct {
	last types.Direction
}

// Press records dir. None leaves the latched value untouched.
func (l *IntentLatch) Press(dir types.Direction) {
	if dir != types.None {
		l.last = dir
	}
}

// Take returns the latched direction and clears it.
func (l *IntentLatch) Take() types.Direction {
	dir := l.last
	l.last = types.None
	return dir
}

func (l *IntentLatch) Peek() types.Direction {
	return l.last
}
