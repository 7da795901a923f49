// Package story holds the narrative graph of Echoes of Ember: the
// encounter nodes, the chapter driver with its command hub, and the
// ending resolver.
package story

import (
	"ember/internal/dice"
	"ember/internal/game"
)

// UI is the terminal surface the story needs on top of plain narration:
// styled headings, choice menus, and free-form input.
type UI interface {
	game.UI
	Title(text string)
	// Choose presents an ordered menu and returns the selected key. It
	// re-prompts until the input is a valid 1-based index or matches a
	// key case-insensitively.
	Choose(prompt string, opts []game.Option) string
	// ReadLine reads one line of free-form input. ok is false once input
	// has ended; callers unwind and let the process exit cleanly.
	ReadLine(prompt string) (string, bool)
}

// Decision flags. Once set they are never unset; the epilogue reads them.
const (
	FlagCastleBlooded = "castle_blooded"
	FlagCastleScholar = "castle_scholar"
	FlagCastleClever  = "castle_clever"
	FlagBanditSneak   = "bandit_sneak"
	FlagAmuletStolen  = "amulet_stolen"
	FlagDragonFriend  = "dragon_friend"
	FlagDragonSlain   = "dragon_slain"
)

// Outcome tags how an encounter node resolved, for the caller to branch on.
type Outcome string

const (
	OutcomeDone        Outcome = "done"
	OutcomeStoleAmulet Outcome = "stole_amulet"
	OutcomeBefriended  Outcome = "befriended"
	OutcomeSlain       Outcome = "slain"
	OutcomeLost        Outcome = "lost"
)

// Session carries one run of the game: the single player, the shared
// random source, the catalog, and the combat engine.
type Session struct {
	UI      UI
	Roller  dice.Roller
	Catalog *game.Catalog
	Combat  *game.Engine
	Player  *game.Player
}

// NewSession wires a session. The player is created by the prologue.
func NewSession(ui UI, r dice.Roller, cat *game.Catalog, combat *game.Engine) *Session {
	return &Session{UI: ui, Roller: r, Catalog: cat, Combat: combat}
}

// item fetches a catalog item that is known to exist; the catalog is
// validated at load time.
func (s *Session) item(name string) game.Item {
	it, _ := s.Catalog.Item(name)
	return it
}

func (s *Session) fight(enemyName string) game.State {
	e, err := s.Catalog.NewEnemy(enemyName)
	if err != nil {
		// validated catalog; an unknown name is a programming error
		panic(err)
	}
	return s.Combat.Run(s.Player, e)
}
