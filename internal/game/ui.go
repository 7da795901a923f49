package game

// UI is the narration sink for the combat engine and item/ability effects.
// The console package provides the real implementation.
type UI interface {
	Say(text string)
	Sayf(format string, args ...any)
}

// Option is one entry of a choice menu: a short key and a description.
// Menus accept a 1-based index or a case-insensitive key match.
type Option struct {
	Key   string
	Label string
}
