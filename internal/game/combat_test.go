package game

import (
	"fmt"
	"testing"

	"ember/internal/dice"
)

// newCombat wires an engine with a scripted roller and input.
func newCombat(r dice.Roller, in ActionSource) (*Engine, *sayRecorder) {
	ui := &sayRecorder{}
	return &Engine{Roller: r, UI: ui, Input: in}, ui
}

func TestCombatAttackThenFlee(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	wolf := testWolf()

	// Turn 1 attack: swing 1 -> damage 7, crit roll 20 misses the
	// threshold of max(2, 3/2)=2, net 7-1=6. Wolf answers with
	// 4 + 0 - 5/2 = 2. Turn 2 flee: chance 50+5*(3-4)=45, roll 10.
	r := &dice.Sequence{Ints: []int{1}, Betweens: []int{20, 0}, Percents: []int{10}}
	en, ui := newCombat(r, &scriptInput{actions: []Action{ActionAttack, ActionFlee}})

	state := en.Run(p, wolf)
	if state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if wolf.HP != 6 {
		t.Errorf("Expected wolf HP 6, got %d", wolf.HP)
	}
	if p.HP != 18 {
		t.Errorf("Expected player HP 18, got %d", p.HP)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("Expected no loot on flee, got %v", p.Inventory)
	}
	if !ui.contains("You successfully fled the battle.") {
		t.Errorf("Expected flee message, got %v", ui.lines)
	}
}

func TestCombatCriticalStrike(t *testing.T) {
	tmpl := ClassTemplate{Name: "Warrior", Stats: Stats{Strength: 6, Agility: 10, Magic: 1, Endurance: 5}, Ability: AbilityBattleCry}
	p := NewPlayer("Aldric", tmpl)
	wolf := testWolf()

	// swing 0 -> damage 6, crit roll 5 <= max(2, 10/2)=5, net (6-1)+3=8
	r := &dice.Sequence{Ints: []int{0}, Betweens: []int{5, 0}, Percents: []int{10}}
	en, ui := newCombat(r, &scriptInput{actions: []Action{ActionAttack, ActionFlee}})

	state := en.Run(p, wolf)
	if state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if wolf.HP != 4 {
		t.Errorf("Expected wolf HP 4 after crit, got %d", wolf.HP)
	}
	if !ui.contains("Critical strike!") {
		t.Errorf("Expected crit announcement, got %v", ui.lines)
	}
}

func TestDefendScopedToOneTurn(t *testing.T) {
	tmpl := ClassTemplate{Name: "Warrior", Stats: Stats{Strength: 1, Agility: 0, Magic: 0, Endurance: 2}, Ability: AbilityBattleCry}
	p := NewPlayer("Aldric", tmpl) // MaxHP 14
	brute := &Enemy{Name: "Brute", HP: 30, MaxHP: 30, Attack: 6, Defense: 0}

	// Turn 1 defend: enemy hits for (6+2-1)/2 = 3.
	// Turn 2 attack: the stance must not carry over; enemy hits for 7.
	// Turn 3 flee: chance 50+5*(0-6)=20, roll 10 escapes.
	r := &dice.Sequence{Ints: []int{0}, Betweens: []int{2, 20, 2}, Percents: []int{10}}
	en, _ := newCombat(r, &scriptInput{actions: []Action{ActionDefend, ActionAttack, ActionFlee}})

	state := en.Run(p, brute)
	if state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if p.HP != 4 {
		t.Errorf("Expected HP 14-3-7=4, got %d", p.HP)
	}
}

func TestFleeChanceClamps(t *testing.T) {
	t.Run("upper clamp at 100", func(t *testing.T) {
		tmpl := ClassTemplate{Name: "Rogue", Stats: Stats{Strength: 4, Agility: 30, Magic: 2, Endurance: 3}, Ability: AbilityTrick}
		p := NewPlayer("Vex", tmpl)
		e := &Enemy{Name: "Slug", HP: 5, MaxHP: 5, Attack: 0}

		// raw chance 50+5*30=200; even a roll of 100 must succeed
		r := &dice.Sequence{Percents: []int{100}}
		en, _ := newCombat(r, &scriptInput{actions: []Action{ActionFlee}})
		if state := en.Run(p, e); state != StateFled {
			t.Errorf("Expected Fled at the 100 boundary, got %v", state)
		}
	})

	t.Run("lower clamp at 10", func(t *testing.T) {
		tmpl := ClassTemplate{Name: "Warrior", Stats: Stats{Strength: 1, Agility: 0, Magic: 0, Endurance: 0}, Ability: AbilityBattleCry}
		e := &Enemy{Name: "Horror", HP: 50, MaxHP: 50, Attack: 20}

		// raw chance 50+5*(0-20) = -50, clamped to 10: a roll of 10
		// escapes, a roll of 11 does not.
		p := NewPlayer("Aldric", tmpl)
		r := &dice.Sequence{Percents: []int{10}}
		en, _ := newCombat(r, &scriptInput{actions: []Action{ActionFlee}})
		if state := en.Run(p, e); state != StateFled {
			t.Errorf("Expected Fled at the 10 boundary, got %v", state)
		}

		p = NewPlayer("Aldric", tmpl) // MaxHP 10; the horror hits for 20
		r = &dice.Sequence{Percents: []int{11}, Betweens: []int{0}}
		en, _ = newCombat(r, &scriptInput{actions: []Action{ActionFlee}})
		if state := en.Run(p, e); state != StateLost {
			t.Errorf("Expected failed flee to lead to Lost, got %v", state)
		}
	})
}

func TestWinGrantsAllLoot(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	e := &Enemy{
		Name: "Bandit Captain", HP: 1, MaxHP: 1, Attack: 5, Defense: 0,
		Loot: []Item{{Name: "Wooden Shield"}, {Name: "Potion"}},
	}

	r := &dice.Sequence{Ints: []int{5}, Betweens: []int{20}}
	en, ui := newCombat(r, &scriptInput{})

	if state := en.Run(p, e); state != StateWon {
		t.Fatalf("Expected Won, got %v", state)
	}
	if len(p.Inventory) != 2 {
		t.Fatalf("Expected every loot item granted, got %v", p.Inventory)
	}
	if p.Inventory[0].Name != "Wooden Shield" || p.Inventory[1].Name != "Potion" {
		t.Errorf("Expected loot in order, got %v", p.Inventory)
	}
	if !ui.contains("You defeated the Bandit Captain!") {
		t.Errorf("Expected victory message, got %v", ui.lines)
	}
}

func TestStealSpecialTakesItemInsteadOfDamage(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	p.AddItem(Item{Name: "Potion"})
	thug := &Enemy{Name: "Bandit Thug", HP: 10, MaxHP: 10, Attack: 3, Special: SpecialSteal}

	// special fires (0.2), steal succeeds (0.4): one item gone, no damage
	r := &dice.Sequence{Chances: []bool{true, true}, Ints: []int{0}, Percents: []int{50}}
	en, ui := newCombat(r, &scriptInput{actions: []Action{ActionDefend, ActionFlee}})

	if state := en.Run(p, thug); state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("Expected Potion stolen, got %v", p.Inventory)
	}
	if p.HP != p.MaxHP {
		t.Errorf("Expected no damage on a steal, got HP %d", p.HP)
	}
	if !ui.contains("deftly steals your Potion") {
		t.Errorf("Expected steal message, got %v", ui.lines)
	}
}

func TestStealSpecialSlashesWhenStealFails(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	p.AddItem(Item{Name: "Potion"})
	thug := &Enemy{Name: "Bandit Thug", HP: 10, MaxHP: 10, Attack: 3, Special: SpecialSteal}

	// special fires but the steal roll fails: a slash for 3+2=5, item kept
	r := &dice.Sequence{Chances: []bool{true, false}, Ints: []int{2}, Percents: []int{50}}
	en, _ := newCombat(r, &scriptInput{actions: []Action{ActionDefend, ActionFlee}})

	if state := en.Run(p, thug); state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if len(p.Inventory) != 1 {
		t.Errorf("Expected inventory untouched, got %v", p.Inventory)
	}
	if p.HP != p.MaxHP-5 {
		t.Errorf("Expected HP %d after slash, got %d", p.MaxHP-5, p.HP)
	}
}

func TestStealSpecialNeverStealsFromEmptyPack(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	thug := &Enemy{Name: "Bandit Thug", HP: 10, MaxHP: 10, Attack: 3, Special: SpecialSteal}

	// with an empty inventory only the special-trigger roll is consumed
	r := &dice.Sequence{Chances: []bool{true}, Ints: []int{0}, Percents: []int{50}}
	en, _ := newCombat(r, &scriptInput{actions: []Action{ActionDefend, ActionFlee}})

	if state := en.Run(p, thug); state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if p.HP != p.MaxHP-3 {
		t.Errorf("Expected a slash for 3, got HP %d", p.HP)
	}
}

func TestFireBreathIgnoresDefendingStance(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	dragon := &Enemy{Name: "Ancient Dragon", HP: 40, MaxHP: 40, Attack: 8, Defense: 3, Special: SpecialFireBreath}

	// breath for 8+3=11 even though the player defends this turn
	r := &dice.Sequence{Chances: []bool{true}, Ints: []int{3}, Percents: []int{10}}
	en, ui := newCombat(r, &scriptInput{actions: []Action{ActionDefend, ActionFlee}})

	en.Run(p, dragon)
	if p.HP != p.MaxHP-11 {
		t.Errorf("Expected HP %d after fire breath, got %d", p.MaxHP-11, p.HP)
	}
	if !ui.contains("breathes fire") {
		t.Errorf("Expected fire breath message, got %v", ui.lines)
	}
}

func TestUseItemInCombat(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	p.HP = 10
	p.AddItem(Item{Name: "Potion", Effect: EffectHeal, Consumable: true})
	p.AddItem(Item{Name: "Wooden Shield", Effect: EffectNone})
	wolf := testWolf()

	// Turn 1: potion heals 6 and is consumed; wolf hits for 4+2-2=4.
	// Turn 2: the shield does nothing and stays. Wolf hits for 4+0-2=2.
	// Turn 3: flee.
	r := &dice.Sequence{Betweens: []int{2, 0}, Percents: []int{10}}
	en, _ := newCombat(r, &scriptInput{
		actions: []Action{ActionUseItem, ActionUseItem, ActionFlee},
		picks:   []int{0, 0},
	})

	if state := en.Run(p, wolf); state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if len(p.Inventory) != 1 || p.Inventory[0].Name != "Wooden Shield" {
		t.Errorf("Expected only the shield left, got %v", p.Inventory)
	}
	if p.HP != 10 {
		t.Errorf("Expected HP 10 (10+6-4-2), got %d", p.HP)
	}
}

func TestUseAbilityInCombat(t *testing.T) {
	p := NewPlayer("Aldric", warriorTemplate())
	wolf := testWolf()

	// battle cry: (6+2)+3 = 11, wolf drops to 1; wolf hits for 2; flee
	r := &dice.Sequence{Ints: []int{2}, Betweens: []int{0}, Percents: []int{10}}
	en, _ := newCombat(r, &scriptInput{actions: []Action{ActionUseAbility, ActionFlee}})

	if state := en.Run(p, wolf); state != StateFled {
		t.Fatalf("Expected Fled, got %v", state)
	}
	if wolf.HP != 1 {
		t.Errorf("Expected wolf HP 1, got %d", wolf.HP)
	}
}

func TestCombatLostAtZeroHP(t *testing.T) {
	tmpl := ClassTemplate{Name: "Warrior", Stats: Stats{Strength: 1, Agility: 0, Magic: 0, Endurance: 0}, Ability: AbilityBattleCry}
	p := NewPlayer("Aldric", tmpl) // MaxHP 10
	brute := &Enemy{Name: "Brute", HP: 50, MaxHP: 50, Attack: 6, Defense: 5}

	// two enemy hits of 6+2=8 finish a 10 HP player; HP floors at 0
	r := &dice.Sequence{Ints: []int{0, 0}, Betweens: []int{20, 2, 20, 2}}
	en, ui := newCombat(r, &scriptInput{})

	if state := en.Run(p, brute); state != StateLost {
		t.Fatalf("Expected Lost, got %v", state)
	}
	if p.HP != 0 {
		t.Errorf("Expected HP exactly 0, got %d", p.HP)
	}
	if p.Alive() {
		t.Error("Expected player dead")
	}
	if !ui.contains("You have fallen in battle...") {
		t.Errorf("Expected defeat message, got %v", ui.lines)
	}
}

func TestCombatTerminatesUnderSimulation(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			p := NewPlayer("Aldric", warriorTemplate())
			p.Equip(Item{Name: "Short Sword", AttackBonus: 2})
			wolf := testWolf()

			en, ui := newCombat(dice.New(seed), &scriptInput{}) // attack every turn
			state := en.Run(p, wolf)

			if state != StateWon && state != StateLost {
				t.Fatalf("Expected a decisive end with attack-only play, got %v", state)
			}
			turns := 0
			for _, l := range ui.lines {
				if l == "Your turn." {
					turns++
				}
			}
			if turns > 200 {
				t.Errorf("Expected combat to resolve well within 200 turns, took %d", turns)
			}
			if p.HP < 0 || p.HP > p.MaxHP || wolf.HP < 0 || wolf.HP > wolf.MaxHP {
				t.Errorf("HP out of bounds: player %d/%d wolf %d/%d", p.HP, p.MaxHP, wolf.HP, wolf.MaxHP)
			}
		})
	}
}
