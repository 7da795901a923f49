package story

import (
	"log/slog"
	"strings"

	"ember/internal/game"
)

// Run plays a full session: prologue, chapter one, the command hub,
// chapter two, epilogue. It returns the resolved ending, or nil when the
// player quit (or input ended) before the story finished.
func (s *Session) Run() *Ending {
	if !s.prologue() {
		return nil
	}
	s.UI.Say("Type 'help' at any time for commands.")
	s.chapterOne()
	if s.Player.Alive() {
		if quit := s.hub(); quit {
			return nil
		}
	}
	return s.epilogue()
}

// prologue asks for a name and class and hands out the starting kit. It
// returns false if input ended before the player was created.
func (s *Session) prologue() bool {
	s.UI.Say("Welcome to 'Echoes of Ember' — a short text-based RPG.")
	name, ok := s.UI.ReadLine("What is your name, adventurer? ")
	if !ok {
		return false
	}
	if name == "" {
		name = "Nameless"
	}

	opts := make([]game.Option, 0, len(s.Catalog.Classes))
	for _, t := range s.Catalog.Classes {
		opts = append(opts, game.Option{Key: strings.ToLower(t.Name), Label: t.Name})
	}
	key := s.UI.Choose("Choose your class:", opts)
	tmpl, ok := s.Catalog.ClassByName(key)
	if !ok {
		return false
	}

	s.Player = game.NewPlayer(name, tmpl)
	s.UI.Sayf("You are %s, the %s. Your adventure begins.", s.Player.Name, s.Player.Class)

	sword := s.item("Short Sword")
	s.Player.AddItem(s.item("Potion"))
	s.Player.AddItem(sword)
	s.Player.Equip(sword)
	slog.Debug("player created", "name", s.Player.Name, "class", string(s.Player.Class))
	return true
}

func (s *Session) chapterOne() {
	s.UI.Title("CHAPTER 1: The Road and the Fork")
	s.UI.Say("You travel a winding road and come to a fork leading to three destinations:")
	switch s.UI.Choose("Where do you go?", []game.Option{
		{Key: "forest", Label: "Haunted Forest"},
		{Key: "castle", Label: "Enchanted Castle"},
		{Key: "bandits", Label: "Bandit's Lair"},
	}) {
	case "forest":
		s.HauntedForest()
	case "castle":
		s.EnchantedCastle()
	case "bandits":
		s.BanditLair()
	}
}

func (s *Session) chapterTwo() Outcome {
	s.UI.Title("CHAPTER 2: The Cavern of Echoes")
	return s.DragonCavern()
}

// hub is the free-form command loop between chapters. It returns true if
// the player quit (or input ended) instead of exploring on.
func (s *Session) hub() bool {
	for s.Player.Alive() {
		line, ok := s.UI.ReadLine("> ")
		if !ok {
			return true
		}
		cmd := strings.ToLower(strings.TrimSpace(line))
		switch {
		case cmd == "help":
			s.showHelp()
		case cmd == "inventory":
			s.listInventory()
		case strings.HasPrefix(cmd, "use "):
			s.useCommand(strings.TrimSpace(cmd[4:]))
		case strings.HasPrefix(cmd, "drop "):
			s.dropCommand(strings.TrimSpace(cmd[5:]))
		case cmd == "stats":
			s.showStats()
		case cmd == "explore":
			s.chapterTwo()
			return false
		case cmd == "quit":
			s.UI.Say("Farewell, adventurer.")
			return true
		default:
			s.UI.Say("That's not a valid command. Type 'help' for available commands.")
		}
	}
	return false
}

func (s *Session) showHelp() {
	s.UI.Say("Available commands while not in combat:")
	s.UI.Say("  inventory  - list items")
	s.UI.Say("  use <name> - use an item by name (e.g., 'use potion')")
	s.UI.Say("  drop <name> - discard an item")
	s.UI.Say("  stats - show character stats")
	s.UI.Say("  explore - continue with next chapter/action")
	s.UI.Say("  quit - exit game")
}

func (s *Session) listInventory() {
	if len(s.Player.Inventory) == 0 {
		s.UI.Say("Your inventory is empty.")
		return
	}
	s.UI.Say("Inventory:")
	for i, it := range s.Player.Inventory {
		s.UI.Sayf("  %d) %s - %s", i+1, it.Name, it.Description)
	}
}

func (s *Session) useCommand(name string) {
	it, ok := s.Player.Item(name)
	if !ok {
		s.UI.Say("You don't have that item.")
		return
	}
	if game.UseItem(s.UI, s.Player, it) {
		s.Player.RemoveItem(it.Name)
	}
}

func (s *Session) dropCommand(name string) {
	removed, ok := s.Player.RemoveItem(name)
	if !ok {
		s.UI.Say("You don't have that item to drop.")
		return
	}
	s.UI.Sayf("You dropped: %s", removed.Name)
}

func (s *Session) showStats() {
	p := s.Player
	s.UI.Say("Stats:")
	s.UI.Sayf("  Strength: %d", p.Stats.Strength)
	s.UI.Sayf("  Agility: %d", p.Stats.Agility)
	s.UI.Sayf("  Magic: %d", p.Stats.Magic)
	s.UI.Sayf("  Endurance: %d", p.Stats.Endurance)
	s.UI.Sayf("HP: %d/%d | Class: %s", p.HP, p.MaxHP, p.Class)
}

func (s *Session) epilogue() *Ending {
	s.UI.Title("EPILOGUE: Consequences of your choices")
	ending := ResolveEnding(s.Player)
	s.UI.Say(ending.Text)
	s.UI.Sayf("Ending achieved: %s", ending.Title)
	s.UI.Say("Thank you for playing Echoes of Ember.")
	return &ending
}
