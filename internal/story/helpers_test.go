package story

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ember/internal/dice"
	"ember/internal/game"
)

// fakeUI scripts menu answers and input lines and records narration.
type fakeUI struct {
	said    []string
	choices []string
	lines   []string
}

func (f *fakeUI) Say(text string) { f.said = append(f.said, text) }

func (f *fakeUI) Sayf(format string, args ...any) { f.Say(fmt.Sprintf(format, args...)) }

func (f *fakeUI) Title(text string) { f.Say(text) }

func (f *fakeUI) Choose(_ string, opts []game.Option) string {
	if len(f.choices) == 0 {
		return opts[0].Key
	}
	c := f.choices[0]
	f.choices = f.choices[1:]
	return c
}

func (f *fakeUI) ReadLine(_ string) (string, bool) {
	if len(f.lines) == 0 {
		return "", false
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l, true
}

func (f *fakeUI) saidContains(sub string) bool {
	for _, l := range f.said {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

// scriptInput scripts combat actions; an exhausted queue keeps attacking.
type scriptInput struct {
	actions []game.Action
	picks   []int
}

func (s *scriptInput) NextAction(_ *game.Player, _ *game.Enemy) game.Action {
	if len(s.actions) == 0 {
		return game.ActionAttack
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a
}

func (s *scriptInput) PickItem(_ *game.Player) (int, bool) {
	if len(s.picks) == 0 {
		return 0, false
	}
	i := s.picks[0]
	s.picks = s.picks[1:]
	return i, true
}

// newTestSession builds a session with a scripted roller and combat input
// and a warrior already created (no starting kit).
func newTestSession(t *testing.T, ui *fakeUI, r dice.Roller, in game.ActionSource) *Session {
	t.Helper()
	cat, err := game.LoadCatalog()
	require.NoError(t, err)
	tmpl, ok := cat.ClassByName("Warrior")
	require.True(t, ok)

	s := NewSession(ui, r, cat, &game.Engine{Roller: r, UI: ui, Input: in})
	s.Player = game.NewPlayer("Tester", tmpl)
	return s
}
