// Package console is the terminal surface of the game: wrapped narration,
// numbered choice menus, free-form prompts, and the in-combat action menu.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ember/internal/game"
)

// Width is the wrap column for narration.
const Width = 78

const invalidChoiceMsg = "That's not a valid command. Please choose a number or option name."

// Console reads player input line by line and writes wrapped, optionally
// styled text. End of input prints a farewell and requests process exit
// with code 0; the exit hook is replaceable for tests.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	exit func(int)

	titleStyle lipgloss.Style
	alertStyle lipgloss.Style
}

// Opt configures a Console.
type Opt func(*Console)

// WithExit replaces the exit hook called when input ends.
func WithExit(fn func(int)) Opt {
	return func(c *Console) { c.exit = fn }
}

// WithColor toggles lipgloss styling.
func WithColor(enabled bool) Opt {
	return func(c *Console) {
		if enabled {
			c.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
			c.alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		} else {
			c.titleStyle = lipgloss.NewStyle()
			c.alertStyle = lipgloss.NewStyle()
		}
	}
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Opt) *Console {
	c := &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		exit: os.Exit,
	}
	WithColor(true)(c)
	for _, o := range opts {
		o(c)
	}
	return c
}

// Say prints text wrapped to the terminal width.
func (c *Console) Say(text string) {
	fmt.Fprintln(c.out, wrap(text, Width))
}

// Sayf formats and prints wrapped text.
func (c *Console) Sayf(format string, args ...any) {
	c.Say(fmt.Sprintf(format, args...))
}

// Title prints a styled section heading.
func (c *Console) Title(text string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.titleStyle.Render(text))
}

// ReadLine prompts for one line of input. It returns ok=false once input
// has ended, after printing a farewell and invoking the exit hook.
func (c *Console) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Goodbye.")
		c.exit(0)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Choose presents a numbered menu and returns the selected option's key.
// Input may be a 1-based index or a case-insensitive key; anything else
// re-prompts indefinitely.
func (c *Console) Choose(prompt string, opts []game.Option) string {
	c.Say(prompt)
	for i, o := range opts {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, o.Label)
	}
	for {
		ans, ok := c.ReadLine("> ")
		if !ok {
			return ""
		}
		if n, err := strconv.Atoi(ans); err == nil && n >= 1 && n <= len(opts) {
			return opts[n-1].Key
		}
		for _, o := range opts {
			if strings.EqualFold(ans, o.Key) {
				return o.Key
			}
		}
		fmt.Fprintln(c.out, c.alertStyle.Render(invalidChoiceMsg))
	}
}

// NextAction is the combat action menu.
func (c *Console) NextAction(p *game.Player, _ *game.Enemy) game.Action {
	opts := []game.Option{
		{Key: "attack", Label: "Attack the enemy"},
		{Key: "defend", Label: "Brace to reduce incoming damage this turn"},
		{Key: "use", Label: "Use item from inventory"},
		{Key: "run", Label: "Attempt to flee"},
	}
	if p.Ability != game.AbilityNone {
		opts = append(opts, game.Option{Key: "ability", Label: p.Ability.Name() + " - " + p.Ability.Description()})
	}
	switch c.Choose("Choose an action:", opts) {
	case "attack":
		return game.ActionAttack
	case "use":
		return game.ActionUseItem
	case "run":
		return game.ActionFlee
	case "ability":
		return game.ActionUseAbility
	default:
		// includes end-of-input, where exit has already been requested
		return game.ActionDefend
	}
}

// PickItem lists the inventory and reads a name or number; blank cancels.
func (c *Console) PickItem(p *game.Player) (int, bool) {
	c.Say("Inventory:")
	for i, it := range p.Inventory {
		c.Sayf("  %d) %s - %s", i+1, it.Name, it.Description)
	}
	c.Say("Type the name or number of the item to use, or blank to cancel.")
	ans, ok := c.ReadLine("> ")
	if !ok || ans == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(ans); err == nil {
		if n >= 1 && n <= len(p.Inventory) {
			return n - 1, true
		}
		c.Say("Invalid item number.")
		return 0, false
	}
	for i, it := range p.Inventory {
		if strings.EqualFold(it.Name, ans) {
			return i, true
		}
	}
	c.Say("You don't have that item.")
	return 0, false
}

// wrap greedily wraps each line of text longer than width. Short lines,
// including indented listings, pass through untouched.
func wrap(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	if len(line) <= width {
		return []string{line}
	}
	words := strings.Fields(line)
	var out []string
	cur := ""
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
