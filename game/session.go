package game

import (
	"fmt"
	"log"
	"time"

	"gridsnake/config"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Session owns one World/Clock pair built from an immutable Config. It is
// the only object a frontend needs to hold.
type Session struct {
	id     string
	cfg    config.Config
	world  *World
	clock  *Clock
	latch  IntentLatch
	scores *manager.StateManager
	rounds int
	Log    *log.Logger
}

// NewSession validates cfg and builds a running session. Log lines go to
// logger with a per-session prefix; a nil logger uses the standard one.
func NewSession(cfg config.Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}
	if logger == nil {
		logger = log.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	id := uuid.New().String()
	s := &Session{
		id:     id,
		cfg:    cfg,
		scores: manager.NewStateManager(),
		Log: log.New(
			logger.Writer(),
			fmt.Sprintf("[session:%s] ", id[:8]),
			log.Ldate|log.Ltime|log.Lmsgprefix),
	}

	foodMgr := manager.NewFoodManager(cfg.Grid, rng, cfg.Strategy())
	s.world = NewWorld(cfg.Grid, cfg.StartPoint(), cfg.Heading(), foodMgr)
	s.world.OnEnd = s.finish
	s.clock = NewClock(cfg.MoveInterval, cfg.FoodInterval, s.world)

	s.Log.Printf("started %dx%d grid, seed=%d, food=%s",
		cfg.Grid.Rows, cfg.Grid.Cols, seed, cfg.Strategy())
	return s, nil
}

func (s *Session) finish(outcome types.Outcome) {
	s.scores.Record(outcome)
	s.Log.Printf("round %d over: %s, length %d (best %d)",
		s.rounds+1, outcome.Reason, outcome.Length, s.scores.HighScore())
}

// Press latches a direction intent to be applied on the next Frame.
func (s *Session) Press(dir types.Direction) {
	s.latch.Press(dir)
}

// Intent returns the latched intent not yet applied.
func (s *Session) Intent() types.Direction {
	return s.latch.Peek()
}

// Frame applies the latest direction intent and advances the simulation by
// elapsed seconds. A frame without elapsed time only latches intent.
func (s *Session) Frame(elapsed float64, intent types.Direction) {
	s.latch.Press(intent)
	if !(elapsed > 0) {
		return
	}
	if dir := s.latch.Take(); dir != types.None {
		s.world.SetDirectionIntent(dir)
	}
	s.clock.AdvanceSeconds(elapsed)
}

// Restart resets the world and both clock accumulators.
func (s *Session) Restart() {
	s.world.Reset()
	s.clock.Reset()
	s.latch.Take()
	s.rounds++
	s.Log.Printf("restarted, round %d", s.rounds+1)
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Config() config.Config {
	return s.cfg
}

func (s *Session) World() *World {
	return s.world
}

func (s *Session) Clock() *Clock {
	return s.clock
}

func (s *Session) Scoreboard() *manager.StateManager {
	return s.scores
}
