package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

const barWidth = 24

// styles renders against a specific writer so color is dropped when the
// output is not a terminal.
type styles struct {
	weak, moderate, strong lipgloss.Style
	label, faint           lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		weak:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		moderate: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		strong:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		label:    r.NewStyle().Bold(true),
		faint:    r.NewStyle().Faint(true),
	}
}

func (s styles) tier(t strength.Tier) lipgloss.Style {
	switch t {
	case strength.Strong:
		return s.strong
	case strength.Moderate:
		return s.moderate
	default:
		return s.weak
	}
}

func bar(progress float64) string {
	filled := int(math.Round(progress * barWidth))
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func renderEvaluation(w io.Writer, resp model.EvaluateResponse) {
	s := newStyles(w)
	ts := s.tier(resp.Strength)

	fmt.Fprintf(w, "%s %s (%d/%d)\n", s.label.Render("Strength:"), ts.Render(string(resp.Strength)), resp.Score, resp.MaxScore)
	fmt.Fprintln(w, ts.Render(bar(resp.Progress)))

	if len(resp.Feedback) > 0 {
		fmt.Fprintln(w, s.label.Render("Suggestions:"))
		for _, f := range resp.Feedback {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}

	if resp.Estimate != nil {
		fmt.Fprintln(w, s.faint.Render(fmt.Sprintf("Estimated crack time: %s (%.1f bits)", resp.Estimate.CrackTime, resp.Estimate.EntropyBits)))
	}
}

func renderGenerated(w io.Writer, password string, res *strength.Result) {
	if res == nil {
		fmt.Fprintln(w, password)
		return
	}
	s := newStyles(w)
	fmt.Fprintf(w, "%s  %s\n", password, s.tier(res.Strength).Render(fmt.Sprintf("%s %d/%d", res.Strength, res.Score, strength.MaxScore)))
}
