// Package chronicle renders a one-page PDF summary of a finished
// adventure: the character, their deeds, and the ending they earned.
package chronicle

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"ember/internal/game"
	"ember/internal/story"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 48
	titleSize = 20
	headSize  = 12
	bodySize  = 10
	lineH     = 14
)

// Generate returns PDF bytes for the adventure chronicle. It is a pure
// function of the final player state and the resolved ending.
func Generate(p *game.Player, ending story.Ending) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("chronicle: nil player")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	// Parchment background and plain border
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetLineWidth(2)
	pdf.Rect(margin/2, margin/2, pageW-margin, pageH-margin, "D")
	pdf.SetLineWidth(1)

	pdf.SetTextColor(80, 50, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 24, "Echoes of Ember", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", headSize)
	pdf.CellFormat(pageW-2*margin, lineH, "An Adventure Chronicle", "", 1, "C", false, 0, "")
	pdf.Ln(lineH)

	heading(pdf, fmt.Sprintf("%s, the %s", p.Name, p.Class))
	pdf.SetFont("Helvetica", "", bodySize)
	line(pdf, fmt.Sprintf("Strength %d   Agility %d   Magic %d   Endurance %d",
		p.Stats.Strength, p.Stats.Agility, p.Stats.Magic, p.Stats.Endurance))
	line(pdf, fmt.Sprintf("HP %d/%d   Level %d", p.HP, p.MaxHP, p.Level))
	pdf.Ln(lineH / 2)

	heading(pdf, "Possessions")
	pdf.SetFont("Helvetica", "", bodySize)
	if len(p.Inventory) == 0 {
		line(pdf, "Nothing but the clothes on their back.")
	}
	for _, it := range p.Inventory {
		line(pdf, fmt.Sprintf("- %s: %s", it.Name, it.Description))
	}
	pdf.Ln(lineH / 2)

	heading(pdf, "Deeds")
	pdf.SetFont("Helvetica", "", bodySize)
	flags := p.Flags()
	sort.Strings(flags)
	if len(flags) == 0 {
		line(pdf, "The chroniclers found nothing of note to record.")
	}
	for _, f := range flags {
		line(pdf, "- "+humanize(f))
	}
	pdf.Ln(lineH / 2)

	heading(pdf, "Ending: "+ending.Title)
	pdf.SetFont("Helvetica", "", bodySize)
	pdf.MultiCell(pageW-2*margin, lineH, ending.Text, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("chronicle: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", headSize)
	pdf.CellFormat(pageW-2*margin, lineH+2, text, "", 1, "L", false, 0, "")
}

func line(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(pageW-2*margin, lineH, text, "", 1, "L", false, 0, "")
}

func humanize(flag string) string {
	words := strings.Split(flag, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
