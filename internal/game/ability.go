package game

import "ember/internal/dice"

// AbilityKind tags a class ability. Each class has exactly one; the
// resolver in UseAbility dispatches on the kind.
type AbilityKind string

const (
	AbilityNone      AbilityKind = ""
	AbilityBattleCry AbilityKind = "battle_cry"
	AbilityMagicBolt AbilityKind = "magic_bolt"
	AbilityTrick     AbilityKind = "trick"
)

// Name returns the display name of the ability.
func (a AbilityKind) Name() string {
	switch a {
	case AbilityBattleCry:
		return "Battle Cry"
	case AbilityMagicBolt:
		return "Magic Bolt"
	case AbilityTrick:
		return "Trick"
	default:
		return ""
	}
}

// Description returns the menu description of the ability.
func (a AbilityKind) Description() string {
	switch a {
	case AbilityBattleCry:
		return "A powerful attack that deals bonus damage."
	case AbilityMagicBolt:
		return "A ranged magic attack that ignores enemy defense."
	case AbilityTrick:
		return "A deceptive strike that may deal extra damage."
	default:
		return ""
	}
}

// UseAbility resolves a class ability against the enemy.
func UseAbility(ui UI, r dice.Roller, p *Player, e *Enemy, a AbilityKind) {
	switch a {
	case AbilityBattleCry:
		ui.Say("You shout a battle cry, bolstering your strike!")
		dmg := p.AttackDamage(r) + 3
		e.TakeDamage(dmg)
		ui.Sayf("You strike for %d damage with your battle cry.", dmg)
	case AbilityMagicBolt:
		// ignores enemy defense entirely
		dmg := 4 + p.Stats.Magic + r.Intn(5)
		e.TakeDamage(dmg)
		ui.Sayf("You cast a crackling bolt of magic for %d damage.", dmg)
	case AbilityTrick:
		ui.Say("You perform a quick feint.")
		if r.Chance(0.4 + float64(p.Stats.Agility)*0.02) {
			ui.Say("You surprise the enemy and strike while they're off balance!")
			dmg := p.AttackDamage(r) + 2
			e.TakeDamage(dmg)
			ui.Sayf("You deal %d damage.", dmg)
		} else {
			ui.Say("The feint fails. No extra effect.")
		}
	}
}
