// Package report renders grading results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unitgrader/internal/sheet"
	"unitgrader/internal/units"
	"unitgrader/pkg/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	outcome  lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
	invalid  lipgloss.Style
	feedback lipgloss.Style
	notice   lipgloss.Style
	label    lipgloss.Style
	faint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		outcome:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")), // yellow
		correct:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),  // green
		wrong:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")), // red
		invalid:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")), // orange
		feedback: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		notice:   r.NewStyle().Foreground(lipgloss.Color("42")),
		label:    r.NewStyle().Bold(true),
		faint:    r.NewStyle().Faint(true),
	}
}

// Printer writes styled output to a writer. With color disabled the output is
// plain text.
type Printer struct {
	w      io.Writer
	styles styles
}

// New creates a Printer for w. Color is also dropped when w is not a terminal.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{w: w, styles: newStyles(r)}
}

// FormatNumber formats an answer without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Result prints the outcome of a single grade.
func (p *Printer) Result(outcome domain.Outcome) {
	fmt.Fprintf(p.w, "\nGrade Result: %s\n", p.styles.outcome.Render(string(outcome)))
}

// Feedback prints the feedback banner. An empty url prints nothing.
func (p *Printer) Feedback(url string) {
	if url == "" {
		return
	}
	fmt.Fprintln(p.w, "\n"+p.styles.feedback.Render(
		fmt.Sprintf("We would like your feedback! Please visit %s to provide feedback.", url)))
}

// VerboseEnabled announces verbose mode.
func (p *Printer) VerboseEnabled() {
	fmt.Fprintln(p.w, p.styles.notice.Render("Verbose mode is enabled."))
}

// Answer prints the expected answer of a question.
func (p *Printer) Answer(inputValue, fromUnit, toUnit string, expected float64) {
	fmt.Fprintf(p.w, "%s %s -> %s: %s\n",
		inputValue, fromUnit, p.styles.label.Render(toUnit), p.styles.correct.Render(FormatNumber(expected)))
}

// Invalid reports a question that cannot be graded.
func (p *Printer) Invalid(reason error) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.invalid.Render("invalid question:"), reason)
}

// Units lists every category with its units.
func (p *Printer) Units(registry *units.Registry) {
	for _, c := range registry.Categories() {
		names := make([]string, 0, len(registry.Units(c)))
		for _, u := range registry.Units(c) {
			names = append(names, string(u))
		}
		fmt.Fprintf(p.w, "%s %s\n", p.styles.label.Render(string(c)+":"), strings.Join(names, ", "))
	}
	fmt.Fprintln(p.w, p.styles.faint.Render("Unit names are case-sensitive."))
}

// Batch prints one line per graded question followed by the summary.
func (p *Printer) Batch(results []domain.Result, summary sheet.Summary) {
	for i, res := range results {
		q := res.Question
		expected := "-"
		if res.HasExpected {
			expected = FormatNumber(res.Expected)
		}
		fmt.Fprintf(p.w, "%3d. %s %s -> %s, response %q, expected %s: %s\n",
			i+1, q.InputValue, q.FromUnit, q.ToUnit, q.StudentResponse, expected, p.outcome(res.Outcome))
	}

	fmt.Fprintf(p.w, "\n%s %d/%d (%.1f%%), %d incorrect, %d invalid\n",
		p.styles.label.Render("Score:"), summary.Correct, summary.Total, summary.Score()*100,
		summary.Incorrect, summary.Invalid)
}

func (p *Printer) outcome(o domain.Outcome) string {
	switch o {
	case domain.OutcomeCorrect:
		return p.styles.correct.Render(string(o))
	case domain.OutcomeIncorrect:
		return p.styles.wrong.Render(string(o))
	default:
		return p.styles.invalid.Render(string(o))
	}
}
