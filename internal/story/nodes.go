package story

import (
	"log/slog"

	"ember/internal/game"
)

// HauntedForest is a light random encounter: wolves, a free potion, or a
// small boon of insight.
func (s *Session) HauntedForest() Outcome {
	s.UI.Say("You enter the Haunted Forest. Fog curls between twisted trees; soft whispers brush your ears.")
	switch roll := s.Roller.Percent(); {
	case roll <= 40:
		s.fight("Dire Wolf")
	case roll <= 75:
		s.UI.Say("You find an old satchel near a tree stump containing a Potion.")
		s.Player.AddItem(s.item("Potion"))
	default:
		s.UI.Say("A ghost appears and offers to test your heart. You feel strangely wiser.")
		s.Player.Stats.Magic++
		s.UI.Say("Your Magic increases by 1.")
	}
	return OutcomeDone
}

// EnchantedCastle is a three-way decision point. Fighting marks the
// player blooded whether or not they win.
func (s *Session) EnchantedCastle() Outcome {
	s.UI.Say("You approach the Enchanted Castle: banners flutter though there is no wind.")
	choice := s.UI.Choose("At the gate a spectral knight asks your intent. How do you respond?",
		[]game.Option{
			{Key: "fight", Label: "Declare you intend to conquer the castle"},
			{Key: "peace", Label: "Tell the knight you seek peace and knowledge"},
			{Key: "trick", Label: "Attempt to trick the knight"},
		})
	switch choice {
	case "fight":
		s.fight("Spectral Knight")
		s.setFlag(FlagCastleBlooded)
	case "peace":
		s.UI.Say("The knight smiles and escorts you into the library where you learn an arcane secret.")
		s.Player.Stats.Magic += 2
		s.setFlag(FlagCastleScholar)
	default:
		s.UI.Say("You attempt to trick the knight. The knight sees through you and laughs, but grants a test of wit.")
		if s.Roller.Chance(0.6 + float64(s.Player.Stats.Agility)*0.02) {
			s.UI.Say("You solved the test! A minor artifact is yours.")
			s.Player.AddItem(s.item("Runestone"))
			s.setFlag(FlagCastleClever)
		} else {
			s.UI.Say("You fail the test and the knight ushers you away.")
			s.Player.TakeDamage(3)
		}
	}
	return OutcomeDone
}

// BanditLair offers a stealth route past two fights. A failed sneak, or
// barging in, means fighting the thug and then the captain; the captain
// is only reached after beating the thug.
func (s *Session) BanditLair() Outcome {
	s.UI.Say("You find the Bandit's Lair — torches, crude flags, and the clink of coins.")
	approach := s.UI.Choose("Do you sneak in or barge into the lair?",
		[]game.Option{
			{Key: "sneak", Label: "Sneak in quietly (higher chance to avoid combat)"},
			{Key: "barge", Label: "Barge in and fight"},
		})
	if approach == "sneak" {
		if s.Roller.Chance(0.5 + float64(s.Player.Stats.Agility)*0.05) {
			s.UI.Say("You slip past sentries and steal a small sack of coins and a Potion.")
			s.Player.AddItem(s.item("Potion"))
			s.setFlag(FlagBanditSneak)
			return OutcomeDone
		}
		s.UI.Say("You're spotted!")
	}
	if s.fight("Bandit Thug") == game.StateWon {
		s.fight("Bandit Captain")
	}
	return OutcomeDone
}

// DragonCavern is the chapter-two climax: steal the amulet, talk the
// dragon down, or fight it. Any failed attempt falls through to combat.
func (s *Session) DragonCavern() Outcome {
	s.UI.Say("The cavern smells of sulfur. A massive dragon stirs, its eyes rolling open.")
	choice := s.UI.Choose("The dragon awakes. What do you do?",
		[]game.Option{
			{Key: "fight", Label: "Draw weapon and attack the dragon"},
			{Key: "befriend", Label: "Attempt to befriend or parley with the dragon"},
			{Key: "steal", Label: "Try to steal the amulet while it's still waking"},
		})
	if choice == "steal" {
		chance := min(30+s.Player.Stats.Agility*5, 100)
		if s.Roller.Percent() <= chance {
			s.UI.Say("You quietly take the Dragon Amulet from a nearby pedestal without waking the dragon!")
			s.Player.AddItem(s.item("Dragon Amulet"))
			s.setFlag(FlagAmuletStolen)
			return OutcomeStoleAmulet
		}
		s.UI.Say("The amulet slips and clatters! The dragon is alerted.")
	}
	if choice == "befriend" {
		charm := s.Player.Stats.Magic + s.Player.Stats.Agility
		if s.Roller.Percent() <= min(30+charm*5, 100) {
			s.UI.Say("Your words and actions calm the dragon. It regards you with ancient curiosity.")
			s.setFlag(FlagDragonFriend)
			s.Player.AddItem(s.item("Dragon's Mark"))
			return OutcomeBefriended
		}
		s.UI.Say("The dragon is unimpressed. It prepares to strike.")
	}
	if s.fight("Ancient Dragon") == game.StateWon {
		s.setFlag(FlagDragonSlain)
		return OutcomeSlain
	}
	return OutcomeLost
}

func (s *Session) setFlag(name string) {
	s.Player.SetFlag(name)
	slog.Debug("flag set", "flag", name)
}
