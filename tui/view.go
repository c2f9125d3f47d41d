package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"debt-planner/amortization"
	"debt-planner/domain"
	"debt-planner/service"
)

const chartHeight = 12

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Debt planner"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case ExtraPaymentTab:
		b.WriteString(m.extraPaymentView())
	case PrioritiesTab:
		b.WriteString(m.prioritiesView())
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) tabBar() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			tabs[i] = m.styles.ActiveTab.Render(title)
		} else {
			tabs[i] = m.styles.Tab.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) fieldRow(f numberField, focused bool) string {
	input := m.styles.Input
	if focused {
		input = m.styles.Focused
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Label.Render(f.label), input.Render(f.input.View()))
}

func (m *Model) extraPaymentView() string {
	var b strings.Builder
	for i, f := range m.fields[ExtraPaymentTab] {
		b.WriteString(m.fieldRow(f, i == m.focus[ExtraPaymentTab]))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Section.Render("Result"))
	b.WriteString("\n")

	if m.projectionErr != nil {
		b.WriteString(m.errorLine(m.projectionErr))
		b.WriteString("\n")
		return b.String()
	}

	r := m.projectionResult
	b.WriteString(m.projectionLine("Without extra payment", r.Baseline))
	b.WriteString(m.projectionLine("With extra payment", r.WithExtra))
	b.WriteString("\n")
	b.WriteString(m.styles.Success.Render(r.Summary))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) projectionLine(label string, p amortization.Projection) string {
	return fmt.Sprintf("%s %s over %s\n",
		m.styles.Label.Render(label),
		m.styles.Value.Render(m.formatter.Format(p.TotalInterest)+" interest"),
		service.Months(p.Months))
}

func (m *Model) prioritiesView() string {
	fields := m.fields[PrioritiesTab]
	focus := m.focus[PrioritiesTab]

	var b strings.Builder
	for i := 0; i < loanSlots; i++ {
		balance, rate := 2*i, 2*i+1
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			m.fieldRow(fields[balance], focus == balance),
			"  ",
			m.fieldRow(fields[rate], focus == rate),
		))
		b.WriteString("\n")
	}
	b.WriteString(m.fieldRow(fields[budgetField], focus == budgetField))
	b.WriteString("\n")

	if m.comparisonErr != nil {
		b.WriteString("\n")
		b.WriteString(m.errorLine(m.comparisonErr))
		b.WriteString("\n")
		return b.String()
	}

	c := m.comparison
	b.WriteString(m.styles.Section.Render(fmt.Sprintf("Total debt %s, paying %s a month",
		m.formatter.Format(c.TotalDebt), m.formatter.Format(c.MonthlyBudget))))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.loanTable(c.Avalanche, m.styles.Avalanche),
		"  ",
		m.loanTable(c.Snowball, m.styles.Snowball),
	))
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Interest comparison"))
	b.WriteString("\n")
	b.WriteString(m.outcomeLine(c.Avalanche))
	b.WriteString(m.outcomeLine(c.Snowball))
	b.WriteString("\n")

	if c.InterestSaved != nil && *c.InterestSaved > 0 {
		b.WriteString(m.styles.Success.Render(c.Verdict))
	} else {
		b.WriteString(m.styles.Info.Render(c.Verdict))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Payoff over time"))
	b.WriteString("\n")
	b.WriteString(m.chart(*c))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) loanTable(o domain.StrategyOutcome, accent lipgloss.Style) string {
	const nameW, balanceW, rateW = 10, 16, 8

	header := m.styles.TableHeader
	rows := []string{
		accent.Bold(true).Render(service.StrategyLabel(o.Strategy)),
		header.Width(nameW).Render("Loan") +
			header.Width(balanceW).Align(lipgloss.Right).Render("Balance") +
			header.Width(rateW).Align(lipgloss.Right).Render("Rate"),
	}
	for _, l := range o.Loans {
		rows = append(rows,
			lipgloss.NewStyle().Width(nameW).Render(l.Name)+
				lipgloss.NewStyle().Width(balanceW).Align(lipgloss.Right).Render(m.formatter.Format(l.Balance))+
				lipgloss.NewStyle().Width(rateW).Align(lipgloss.Right).Render(fmt.Sprintf("%.2f%%", l.AnnualRatePercent)),
		)
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m *Model) outcomeLine(o domain.StrategyOutcome) string {
	label := m.styles.Label.Render("Total interest, " + string(o.Strategy))
	if o.Payoff == nil {
		return label + " " + m.styles.Error.Render("not paid off: "+o.Error) + "\n"
	}
	return fmt.Sprintf("%s %s over %s\n",
		label,
		m.styles.Value.Render(m.formatter.Format(o.Payoff.TotalInterest)),
		service.Months(o.Payoff.Months))
}

func (m *Model) chart(c domain.Comparison) string {
	width := min(max(m.width-24, 20), 120)

	return NewLineChart(width, chartHeight).
		SetLabelFunc(m.formatter.Format).
		SetXLabel("months").
		AddSeries(Series{Label: "Avalanche", Values: c.Avalanche.Trajectory, Mark: '●', Style: m.styles.Avalanche}).
		AddSeries(Series{Label: "Snowball", Values: c.Snowball.Trajectory, Mark: '•', Style: m.styles.Snowball}).
		View()
}

func (m *Model) errorLine(err error) string {
	switch {
	case errors.Is(err, service.ErrNoLoans):
		return m.styles.Info.Render("Enter at least one loan to see the priority lists and the chart.")
	case errors.Is(err, amortization.ErrInsufficientPayment):
		return m.styles.Error.Render("The payment does not cover the interest. Increase the monthly or the extra payment.")
	}
	return m.styles.Error.Render(err.Error())
}

func (m *Model) helpView() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
