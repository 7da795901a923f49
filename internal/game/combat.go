package game

import (
	"log/slog"

	"ember/internal/dice"
)

// State is a combat engine state. PlayerTurn and EnemyTurn alternate
// until one of the terminal states is reached.
type State int

const (
	StatePlayerTurn State = iota
	StateEnemyTurn
	StateWon
	StateLost
	StateFled
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StatePlayerTurn:
		return "player_turn"
	case StateEnemyTurn:
		return "enemy_turn"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends combat.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateFled
}

// Action is one player combat action.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionUseItem
	ActionUseAbility
	ActionFlee
)

// ActionSource supplies the player's decisions each turn. The console
// implements it with menus; tests script it.
type ActionSource interface {
	// NextAction picks the action for this turn.
	NextAction(p *Player, e *Enemy) Action
	// PickItem selects an inventory index to use, or reports a cancel.
	// Only called with a non-empty inventory.
	PickItem(p *Player) (int, bool)
}

// Engine runs turn-based combat between the player and one enemy.
type Engine struct {
	Roller dice.Roller
	UI     UI
	Input  ActionSource
}

// Run resolves a full combat and returns the terminal state. On a win,
// every loot item is granted to the player; fleeing keeps current HP and
// inventory but grants nothing.
func (en *Engine) Run(p *Player, e *Enemy) State {
	en.UI.Sayf("A %s stands before you! (HP: %d/%d)", e.Name, e.HP, e.MaxHP)

	state := StatePlayerTurn
	defended := false
	for !state.Terminal() {
		switch state {
		case StatePlayerTurn:
			state, defended = en.playerTurn(p, e)
		case StateEnemyTurn:
			en.enemyTurn(p, e, defended)
			switch {
			case !p.Alive():
				state = StateLost
			default:
				state = StatePlayerTurn
			}
		}
	}

	slog.Debug("combat resolved", "enemy", e.Name, "state", state.String(), "hp", p.HP)
	switch state {
	case StateWon:
		en.UI.Sayf("You defeated the %s!", e.Name)
		for _, it := range e.Loot {
			en.UI.Sayf("You found: %s - %s", it.Name, it.Description)
			p.AddItem(it)
		}
	case StateLost:
		en.UI.Say("You have fallen in battle...")
	}
	return state
}

// playerTurn resolves one player action. The returned defended flag is
// true only when the player braced this turn; it never carries over.
func (en *Engine) playerTurn(p *Player, e *Enemy) (State, bool) {
	en.UI.Say("Your turn.")
	en.UI.Sayf("  HP: %d/%d | Enemy HP: %d/%d", p.HP, p.MaxHP, e.HP, e.MaxHP)

	switch en.Input.NextAction(p, e) {
	case ActionAttack:
		en.attack(p, e)
	case ActionDefend:
		en.UI.Say("You take a defensive stance. Incoming damage will be reduced.")
		return en.afterPlayerAction(e), true
	case ActionUseItem:
		en.useItem(p)
	case ActionUseAbility:
		if p.Ability == AbilityNone {
			en.UI.Say("You have no abilities.")
		} else {
			UseAbility(en.UI, en.Roller, p, e, p.Ability)
		}
	case ActionFlee:
		chance := clamp(50+5*(p.Stats.Agility-e.Attack), 10, 100)
		if en.Roller.Percent() <= chance {
			en.UI.Say("You successfully fled the battle.")
			return StateFled, false
		}
		en.UI.Say("You fail to escape!")
	}
	return en.afterPlayerAction(e), false
}

func (en *Engine) afterPlayerAction(e *Enemy) State {
	if !e.Alive() {
		return StateWon
	}
	return StateEnemyTurn
}

func (en *Engine) attack(p *Player, e *Enemy) {
	net := max(0, p.AttackDamage(en.Roller)-e.Defense)
	if en.Roller.Between(1, 20) <= max(2, p.Stats.Agility/2) {
		net += 3
		en.UI.Say("Critical strike!")
	}
	e.TakeDamage(net)
	en.UI.Sayf("You strike the %s for %d damage.", e.Name, net)
}

func (en *Engine) useItem(p *Player) {
	if len(p.Inventory) == 0 {
		en.UI.Say("Your inventory is empty.")
		return
	}
	idx, ok := en.Input.PickItem(p)
	if !ok || idx < 0 || idx >= len(p.Inventory) {
		return
	}
	if UseItem(en.UI, p, p.Inventory[idx]) {
		p.RemoveAt(idx)
	}
}

// enemyTurn resolves the enemy's action: a 20% chance of its special when
// it has one, otherwise a basic attack softened by Endurance and, when the
// player braced this turn, halved.
func (en *Engine) enemyTurn(p *Player, e *Enemy, defended bool) {
	if e.Special != SpecialNone && en.Roller.Chance(0.2) {
		en.special(p, e)
		return
	}
	dmg := max(0, e.Attack+en.Roller.Between(-1, 2)-p.Stats.Endurance/2)
	if defended {
		dmg /= 2
	}
	p.TakeDamage(dmg)
	en.UI.Sayf("The %s hits you for %d damage. (HP: %d/%d)", e.Name, dmg, p.HP, p.MaxHP)
}

func (en *Engine) special(p *Player, e *Enemy) {
	switch e.Special {
	case SpecialSteal:
		// steal or slash, never both
		if len(p.Inventory) > 0 && en.Roller.Chance(0.4) {
			stolen := p.Inventory[en.Roller.Intn(len(p.Inventory))]
			p.RemoveItem(stolen.Name)
			en.UI.Sayf("The %s deftly steals your %s!", e.Name, stolen.Name)
			return
		}
		dmg := max(1, e.Attack+en.Roller.Intn(3))
		p.TakeDamage(dmg)
		en.UI.Sayf("The %s slashes you for %d damage.", e.Name, dmg)
	case SpecialFireBreath:
		dmg := 8 + en.Roller.Intn(7)
		p.TakeDamage(dmg)
		en.UI.Sayf("The %s breathes fire! You take %d fire damage.", e.Name, dmg)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
