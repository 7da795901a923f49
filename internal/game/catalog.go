package game

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var rawCatalog []byte

// EnemySpec is the catalog entry for an enemy; loot entries name items
// from the same catalog.
type EnemySpec struct {
	Name    string      `yaml:"name"`
	HP      int         `yaml:"hp"`
	Attack  int         `yaml:"attack"`
	Defense int         `yaml:"defense"`
	Magic   int         `yaml:"magic"`
	Special SpecialKind `yaml:"special"`
	Loot    []string    `yaml:"loot"`
}

// ClassTemplate is the catalog entry for a playable class.
type ClassTemplate struct {
	Name    string      `yaml:"name"`
	Stats   Stats       `yaml:"stats"`
	Ability AbilityKind `yaml:"ability"`
}

// Class returns the template's name as a Class value.
func (t ClassTemplate) Class() Class { return Class(t.Name) }

// Catalog holds the static item, enemy, and class definitions, loaded
// from the embedded YAML. Entries are immutable templates.
type Catalog struct {
	Items   []Item          `yaml:"items"`
	Enemies []EnemySpec     `yaml:"enemies"`
	Classes []ClassTemplate `yaml:"classes"`
}

// LoadCatalog parses and validates the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, it := range c.Items {
		switch it.Effect {
		case EffectNone, EffectHeal, EffectFullHeal:
		default:
			return nil, fmt.Errorf("item %q: unknown effect %q", it.Name, it.Effect)
		}
	}
	for _, e := range c.Enemies {
		switch e.Special {
		case SpecialNone, SpecialSteal, SpecialFireBreath:
		default:
			return nil, fmt.Errorf("enemy %q: unknown special %q", e.Name, e.Special)
		}
		for _, name := range e.Loot {
			if _, ok := c.Item(name); !ok {
				return nil, fmt.Errorf("enemy %q: loot %q not in catalog", e.Name, name)
			}
		}
	}
	for _, t := range c.Classes {
		if t.Ability.Name() == "" {
			return nil, fmt.Errorf("class %q: unknown ability %q", t.Name, t.Ability)
		}
	}
	return &c, nil
}

// Item returns the catalog item with the given name.
func (c *Catalog) Item(name string) (Item, bool) {
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// NewEnemy builds a fresh enemy instance from its catalog entry, with
// loot resolved to item templates.
func (c *Catalog) NewEnemy(name string) (*Enemy, error) {
	for _, spec := range c.Enemies {
		if spec.Name != name {
			continue
		}
		e := &Enemy{
			Name:    spec.Name,
			HP:      spec.HP,
			MaxHP:   spec.HP,
			Attack:  spec.Attack,
			Defense: spec.Defense,
			Magic:   spec.Magic,
			Special: spec.Special,
		}
		for _, lootName := range spec.Loot {
			it, _ := c.Item(lootName)
			e.Loot = append(e.Loot, it)
		}
		return e, nil
	}
	return nil, fmt.Errorf("unknown enemy: %s", name)
}

// ClassByName returns the class template matching name, which may be
// given in any case.
func (c *Catalog) ClassByName(name string) (ClassTemplate, bool) {
	for _, t := range c.Classes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return ClassTemplate{}, false
}
