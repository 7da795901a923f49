package game

// Stats holds a character's core attributes. Every formula in the game
// references exactly these four fields.
type Stats struct {
	Strength  int `yaml:"strength"`
	Agility   int `yaml:"agility"`
	Magic     int `yaml:"magic"`
	Endurance int `yaml:"endurance"`
}

// Class is the player's chosen role.
type Class string

const (
	Warrior Class = "Warrior"
	Mage    Class = "Mage"
	Rogue   Class = "Rogue"
)
