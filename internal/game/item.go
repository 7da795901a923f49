package game

// EffectKind tags what an item does when used. Effects are data; the
// single resolver in UseItem dispatches on the kind.
type EffectKind string

const (
	// EffectNone marks equipment and quest items: using them does nothing
	// and never consumes them.
	EffectNone EffectKind = ""
	// EffectHeal restores 6 + Magic/2 HP.
	EffectHeal EffectKind = "heal"
	// EffectFullHeal restores the player to max HP.
	EffectFullHeal EffectKind = "full_heal"
)

// Item is an immutable template. Owning an item means holding a copy in
// the inventory. A positive AttackBonus marks a weapon.
type Item struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Effect      EffectKind `yaml:"effect"`
	Consumable  bool       `yaml:"consumable"`
	AttackBonus int        `yaml:"attackBonus"`
}

// IsWeapon reports whether the item can be equipped for an attack bonus.
func (it Item) IsWeapon() bool { return it.AttackBonus > 0 }

// UseItem applies an item's effect to the player and reports whether the
// item was consumed. Equipment and quest items are no-ops.
func UseItem(ui UI, p *Player, it Item) bool {
	switch it.Effect {
	case EffectHeal:
		healed := p.Heal(6 + p.Stats.Magic/2)
		ui.Sayf("You drink the %s and recover %d HP (now %d/%d).", it.Name, healed, p.HP, p.MaxHP)
		return it.Consumable
	case EffectFullHeal:
		p.HP = p.MaxHP
		ui.Sayf("A warm glow fills you. You are fully healed (%d/%d).", p.HP, p.MaxHP)
		return it.Consumable
	default:
		return false
	}
}
