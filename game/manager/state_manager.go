package manager

import (
	"strconv"
	"strings"

	"gridsnake/game/types"
)

// MaxHistory bounds the number of outcomes kept by the scoreboard.
const MaxHistory = 50

// StateManager keeps the scoreboard of a running process. Nothing is
// written to disk; a new process starts from zero.
type StateManager struct {
	highScore   int
	gamesPlayed int
	victories   int
	history     []types.Outcome
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]types.Outcome, 0, MaxHistory),
	}
}

// Record adds a finished session to the scoreboard.
func (sm *StateManager) Record(outcome types.Outcome) {
	sm.gamesPlayed++
	if outcome.Reason == types.Victory {
		sm.victories++
	}
	if outcome.Length > sm.highScore {
		sm.highScore = outcome.Length
	}

	if len(sm.history) >= MaxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, outcome)
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) Victories() int {
	return sm.victories
}

// History returns a copy of the recorded outcomes, oldest first.
func (sm *StateManager) History() []types.Outcome {
	out := make([]types.Outcome, len(sm.history))
	copy(out, sm.history)
	return out
}

// AverageLength returns the mean final length over the kept history.
func (sm *StateManager) AverageLength() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, o := range sm.history {
		sum += o.Length
	}
	return float64(sum) / float64(len(sm.history))
}

// RecentLengths lists the final lengths of the last n outcomes in history,
// newest first.
func RecentLengths(history []types.Outcome, n int) string {
	parts := make([]string, 0, n)
	for i := len(history) - 1; i >= 0 && len(parts) < n; i-- {
		parts = append(parts, strconv.Itoa(history[i].Length))
	}
	return strings.Join(parts, " ")
}
