package game

import (
	"fmt"
	"strings"
)

// sayRecorder captures narration for assertions.
type sayRecorder struct {
	lines []string
}

func (s *sayRecorder) Say(text string) { s.lines = append(s.lines, text) }

func (s *sayRecorder) Sayf(format string, args ...any) { s.Say(fmt.Sprintf(format, args...)) }

func (s *sayRecorder) contains(sub string) bool {
	for _, l := range s.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

// scriptInput is a scripted ActionSource. An exhausted action queue keeps
// attacking, which also serves the bounded-termination simulations.
type scriptInput struct {
	actions []Action
	picks   []int
	cancel  bool
}

func (s *scriptInput) NextAction(_ *Player, _ *Enemy) Action {
	if len(s.actions) == 0 {
		return ActionAttack
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a
}

func (s *scriptInput) PickItem(_ *Player) (int, bool) {
	if s.cancel || len(s.picks) == 0 {
		return 0, false
	}
	i := s.picks[0]
	s.picks = s.picks[1:]
	return i, true
}

func warriorTemplate() ClassTemplate {
	return ClassTemplate{
		Name:    "Warrior",
		Stats:   Stats{Strength: 6, Agility: 3, Magic: 1, Endurance: 5},
		Ability: AbilityBattleCry,
	}
}

func testWolf() *Enemy {
	return &Enemy{Name: "Dire Wolf", HP: 12, MaxHP: 12, Attack: 4, Defense: 1}
}
