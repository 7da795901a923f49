package game

// SpecialKind tags an enemy's alternate action, used instead of a basic
// attack on a fixed 20% of enemy turns.
type SpecialKind string

const (
	// SpecialNone means the enemy only ever makes basic attacks.
	SpecialNone SpecialKind = ""
	// SpecialSteal gives a 40% chance to snatch a random inventory item;
	// otherwise the enemy lands a normal slash instead.
	SpecialSteal SpecialKind = "steal"
	// SpecialFireBreath deals 8 plus up to 6 damage, ignoring both the
	// enemy's usual attack stat and the player's defensive stance.
	SpecialFireBreath SpecialKind = "fire_breath"
)

// Enemy is one combat opponent. Enemies are built fresh per encounter
// from the catalog and discarded once combat resolves.
type Enemy struct {
	Name    string
	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Magic   int
	Special SpecialKind
	Loot    []Item
}

// Alive reports whether the enemy can still fight.
func (e *Enemy) Alive() bool { return e.HP > 0 }

// TakeDamage reduces HP, flooring at zero.
func (e *Enemy) TakeDamage(dmg int) {
	e.HP -= dmg
	if e.HP < 0 {
		e.HP = 0
	}
}
