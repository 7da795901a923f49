package story

import "ember/internal/game"

// Ending is one of the five terminal narratives.
type Ending struct {
	Title string
	Text  string
}

// ResolveEnding maps the final player state to exactly one ending. The
// rules are checked in strict priority order; the first match wins and no
// combination is scored.
func ResolveEnding(p *game.Player) Ending {
	switch {
	case p.HasFlag(FlagDragonFriend) && p.HasFlag(FlagCastleScholar):
		return Ending{
			Title: "Protector",
			Text:  "With knowledge from the castle and the dragon's trust, you become a protector of ancient lore. The kingdom thrives under your guidance.",
		}
	case p.HasFlag(FlagDragonSlain) && p.HasFlag(FlagCastleBlooded):
		return Ending{
			Title: "Hero",
			Text:  "Having bathed in the dragon's blood and proven your strength at the castle, ballads are sung of your deeds. You are a celebrated hero.",
		}
	case p.HasFlag(FlagAmuletStolen):
		return Ending{
			Title: "Outlaw",
			Text:  "You escaped with the Dragon Amulet. Richer and notorious, you live a life on the run — wealthy but hunted.",
		}
	case !p.Alive():
		return Ending{
			Title: "Fallen",
			Text:  "Your journey ends in darkness. Your story becomes a cautionary tale told in hushed whispers.",
		}
	default:
		return Ending{
			Title: "Open",
			Text:  "Your path was uneven — some choices bore fruit, others cost you dearly. The road ahead remains open; your story continues in whispered possibilities.",
		}
	}
}
