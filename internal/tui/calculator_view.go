package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/coalprint/internal/footprint"
	"github.com/rshade/coalprint/internal/greenops"
)

// AppTitle is shown at the top of every screen.
const AppTitle = "Coal Mining Carbon Footprint Calculator"

// Summary table column widths.
const (
	colWidthCategory = 16
	colWidthValue    = 20
	colWidthKg       = 14
)

// View renders the active step or the summary.
func (m *CalculatorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.stepper.IsSummary() {
		b.WriteString(m.renderSummary())
	} else {
		b.WriteString(m.renderInputStep())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader renders the title, the "N/7" indicator and the step progress bar.
func (m *CalculatorModel) renderHeader() string {
	title := HeaderStyle.Render(AppTitle)
	indicator := ValueStyle.Render(m.stepper.Label())

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(indicator)
	if gap < 2 { //nolint:mnd // Minimum spacing.
		gap = 2
	}
	line := title + strings.Repeat(" ", gap) + indicator

	return line + "\n" + m.stepBar.ViewAs(m.stepper.Fraction())
}

// renderInputStep renders the icon, label, field, inline error and tooltip
// for the active category, then the button bar.
func (m *CalculatorModel) renderInputStep() string {
	c, _ := m.stepper.Category()
	info := c.Info()

	var b strings.Builder
	b.WriteString(IconStyle.Render(info.Icon))
	b.WriteString(TitleStyle.Render(capitalize(info.Name)))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Enter %s (%s):", info.Name, info.Unit)))
	b.WriteString(" ")
	b.WriteString(SubtleStyle.Render("[?]"))
	b.WriteString("\n")
	b.WriteString(m.inputs[c].View())

	if m.errs.Has(c) {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(footprint.FieldErrorMessage))
	}

	if m.showTooltip {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(info.Tooltip))
	}

	if banner := renderErrorBanner(m.errs); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	b.WriteString("\n\n")
	b.WriteString(RenderButtonBar(NavButtons(m.stepper), m.width))
	return b.String()
}

// renderErrorBanner lists every flagged category so fields on other steps
// are not missed.
func renderErrorBanner(errs footprint.FieldErrors) string {
	if len(errs) == 0 {
		return ""
	}
	cats := errs.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	noun := "fields need"
	if len(cats) == 1 {
		noun = "field needs"
	}
	return WarnStyle.Render(fmt.Sprintf("%d %s attention before calculating: %s",
		len(cats), noun, strings.Join(names, ", ")))
}

// renderSummary renders the per-category table, total, gauge and equivalency.
func (m *CalculatorModel) renderSummary() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Carbon Footprint Summary"))
	b.WriteString("\n\n")
	b.WriteString(NewSummaryTable(m.result).View())
	b.WriteString("\n\n")
	b.WriteString(RenderTotalLine(m.result))
	b.WriteString("\n\n")
	b.WriteString(RenderGauge(m.gauge, m.result))

	if m.equivalency != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(m.equivalency))
	}
	return b.String()
}

// NewSummaryTable builds a read-only table of each category's raw value,
// unit and kg CO2e contribution.
func NewSummaryTable(res footprint.Result) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: colWidthCategory},
		{Title: "Value", Width: colWidthValue},
		{Title: "kg CO2e", Width: colWidthKg},
	}

	rows := make([]table.Row, 0, footprint.CategoryCount)
	for _, c := range footprint.Categories() {
		value := footprint.DisplayValue(res.Values[c]) + " " + c.Unit()
		if res.Coerced[c] {
			value += " (!)"
		}
		rows = append(rows, table.Row{
			capitalize(c.String()),
			value,
			footprint.FormatTotal(res.Contributions[c]),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), //nolint:mnd // Header and border lines.
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Cell = TableCellStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// RenderTotalLine renders "Total Emissions: X.XX kg CO2e".
func RenderTotalLine(res footprint.Result) string {
	if res.Overflow() {
		return WarnStyle.Render("Total Emissions: " + footprint.FormatKg(res.TotalKg))
	}
	return TotalStyle.Render("Total Emissions: " + footprint.FormatKg(res.TotalKg))
}

// RenderGauge renders the bounded percentage bar and its caption.
func RenderGauge(bar progress.Model, res footprint.Result) string {
	caption := fmt.Sprintf("%s of %.0f kg CO2e", footprint.FormatPercent(res.Percent), footprint.ReferenceKg)
	return bar.ViewAs(res.Percent/100) + "\n" + LabelStyle.Render(caption) //nolint:mnd // Percent to fraction.
}

// RenderSummary renders a boxed summary for non-interactive styled output.
func RenderSummary(ctx context.Context, res footprint.Result, width int) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(AppTitle))
	content.WriteString("\n")
	content.WriteString(TitleStyle.Render("Carbon Footprint Summary"))
	content.WriteString("\n\n")

	for _, c := range footprint.Categories() {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-16s", capitalize(c.String())+":")))
		content.WriteString(ValueStyle.Render(footprint.DisplayValue(res.Values[c]) + " " + c.Unit()))
		if res.Coerced[c] {
			content.WriteString(WarnStyle.Render("  counted as 0"))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(RenderTotalLine(res))
	content.WriteString("\n")

	barWidth := width - 2*barPadding
	if barWidth > barWidthMax {
		barWidth = barWidthMax
	}
	if barWidth < 10 { //nolint:mnd // Minimum usable bar.
		barWidth = 10
	}
	gauge := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(barWidth))
	content.WriteString(RenderGauge(gauge, res))

	if res.Overflow() {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render("The inputs are too large for a total to be calculated."))
	} else if line := greenops.DisplayLine(ctx, res.TotalKg); line != "" {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(line))
	}

	return BoxStyle.Width(width-borderPadding).Render(content.String()) + "\n"
}

// borderPadding accounts for the box's left and right border.
const borderPadding = 2

// capitalize upper-cases the first letter of an ASCII identifier.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
