package ai

import "gridsnake/game/types"

// Pilot plays the game in place of a human. It asks the agent for one
// direction per movement step and learns from the previous one.
type Pilot struct {
	agent      *QLearning
	lastState  State
	lastAction types.Direction
	lastStep   int
	deciding   bool
	Rounds     int
}

func NewPilot(agent *QLearning) *Pilot {
	return &Pilot{agent: agent}
}

func (p *Pilot) Agent() *QLearning {
	return p.agent
}

// Reset forgets the transition in flight. Call it when the world is
// restarted before the round ended.
func (p *Pilot) Reset() {
	p.deciding = false
	p.lastStep = 0
}

// Decide returns the intent for the coming movement step, or None when
// there is nothing new to decide.
func (p *Pilot) Decide(v View) types.Direction {
	if !v.IsRunning() {
		if p.deciding {
			p.agent.Update(p.lastState, p.lastAction, NewState(v), true, v.Outcome())
			p.deciding = false
			p.Rounds++
		}
		return types.None
	}

	if p.deciding && v.Steps() < p.lastStep {
		// the world was reset under us
		p.Reset()
	}
	if p.deciding && v.Steps() == p.lastStep {
		return types.None
	}

	state := NewState(v)
	if p.deciding {
		p.agent.Update(p.lastState, p.lastAction, state, false, types.Outcome{})
	}

	action := p.agent.GetAction(state)
	if action == v.Facing().Opposite() {
		// the world refuses reversals; turn instead if going straight is fatal
		action = safeTurn(v)
	}

	p.lastState = state
	p.lastAction = action
	p.lastStep = v.Steps()
	p.deciding = true
	return action
}

// safeTurn picks straight, left or right relative to the facing direction,
// preferring the first one that does not end the round.
func safeTurn(v View) types.Direction {
	facing := v.Facing()
	for _, dir := range []types.Direction{facing, facing.TurnLeft(), facing.TurnRight()} {
		if !v.IsDanger(dir) {
			return dir
		}
	}
	return facing
}
