package game

import (
	"strings"

	"ember/internal/dice"
)

// Player is the single mutable actor of a session. It is created once at
// game start from a class template and mutated until the process ends.
type Player struct {
	Name      string
	Class     Class
	Level     int
	XP        int
	Stats     Stats
	MaxHP     int
	HP        int
	Inventory []Item
	Equipped  *Item
	Ability   AbilityKind

	flags map[string]bool
}

// NewPlayer builds a fresh player from a class template. Max HP derives
// from Endurance; the player starts at full health with an empty pack.
func NewPlayer(name string, tmpl ClassTemplate) *Player {
	maxHP := 10 + tmpl.Stats.Endurance*2
	return &Player{
		Name:    name,
		Class:   tmpl.Class(),
		Level:   1,
		Stats:   tmpl.Stats,
		MaxHP:   maxHP,
		HP:      maxHP,
		Ability: tmpl.Ability,
		flags:   map[string]bool{},
	}
}

// Alive reports whether the player can still act.
func (p *Player) Alive() bool { return p.HP > 0 }

// TakeDamage reduces HP, flooring at zero.
func (p *Player) TakeDamage(dmg int) {
	p.HP -= dmg
	if p.HP < 0 {
		p.HP = 0
	}
}

// Heal restores up to amount HP, capped at MaxHP. It returns the number
// of hit points actually restored.
func (p *Player) Heal(amount int) int {
	healed := min(p.MaxHP-p.HP, amount)
	p.HP += healed
	return healed
}

// AddItem appends an item to the inventory. Duplicates are allowed and
// order is preserved.
func (p *Player) AddItem(it Item) {
	p.Inventory = append(p.Inventory, it)
}

// RemoveItem removes the first inventory entry whose name matches,
// case-insensitively. It returns the removed item and whether a match
// was found.
func (p *Player) RemoveItem(name string) (Item, bool) {
	for i, it := range p.Inventory {
		if strings.EqualFold(it.Name, name) {
			p.RemoveAt(i)
			return it, true
		}
	}
	return Item{}, false
}

// RemoveAt removes the inventory entry at index i.
func (p *Player) RemoveAt(i int) {
	p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
}

// Item returns the first inventory entry matching name, case-insensitively.
func (p *Player) Item(name string) (Item, bool) {
	for _, it := range p.Inventory {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return Item{}, false
}

// Equip makes the weapon's bonus count toward attack damage. The equipped
// weapon is tracked separately from the inventory: losing the item does
// not unequip it.
func (p *Player) Equip(w Item) {
	p.Equipped = &w
}

// AttackDamage computes the damage of a basic strike before the enemy's
// defense: Strength, plus the equipped weapon bonus, plus a random swing
// of up to Agility, never below 1.
func (p *Player) AttackDamage(r dice.Roller) int {
	bonus := 0
	if p.Equipped != nil {
		bonus = p.Equipped.AttackBonus
	}
	return max(1, p.Stats.Strength+bonus+r.Intn(p.Stats.Agility+1))
}

// SetFlag records a narrative decision. Flags only ever accumulate;
// ending resolution depends on them never being unset.
func (p *Player) SetFlag(name string) {
	if p.flags == nil {
		p.flags = map[string]bool{}
	}
	p.flags[name] = true
}

// HasFlag reports whether the named decision flag has been set.
func (p *Player) HasFlag(name string) bool { return p.flags[name] }

// Flags returns a copy of the decision flags that have been set.
func (p *Player) Flags() []string {
	out := make([]string, 0, len(p.flags))
	for f := range p.flags {
		out = append(out, f)
	}
	return out
}
