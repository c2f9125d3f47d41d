// Package tui is an interactive terminal front end for the planner. It
// recomputes the projection and the strategy comparison on every keystroke.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"debt-planner/amortization"
	"debt-planner/domain"
	"debt-planner/money"
	"debt-planner/service"
)

type Tab int

const (
	ExtraPaymentTab Tab = iota
	PrioritiesTab
)

var tabTitles = []string{"Extra payment", "Debt priorities"}

const (
	loanSlots     = 5
	defaultBudget = "5000"
)

// field positions on the extra payment tab
const (
	balanceField = iota
	rateField
	paymentField
	extraField
)

// budgetField is the position of the budget input on the priorities tab;
// each loan slot before it owns a balance and a rate input.
const budgetField = loanSlots * 2

// Model is the bubbletea model of the calculator.
type Model struct {
	projection *service.ProjectionService
	strategy   *service.StrategyService
	formatter  money.Formatter
	log        *zap.Logger
	keys       KeyMap
	styles     Styles

	tab    Tab
	fields [2][]numberField
	focus  [2]int

	projectionResult *domain.ProjectionResult
	projectionErr    error
	comparison       *domain.Comparison
	comparisonErr    error

	width  int
	height int
}

// New creates the model with the inputs prefilled and both tabs computed.
func New(
	projection *service.ProjectionService,
	strategy *service.StrategyService,
	formatter money.Formatter,
	log *zap.Logger,
) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	m := &Model{
		projection: projection,
		strategy:   strategy,
		formatter:  formatter,
		log:        log,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		width:      100,
	}

	m.fields[ExtraPaymentTab] = []numberField{
		balanceField: newNumberField("Current loan balance", "2000000"),
		rateField:    newNumberField("Nominal annual rate (%)", "5"),
		paymentField: newNumberField("Current monthly payment", "10000"),
		extraField:   newNumberField("Extra monthly payment", "1000"),
	}

	loans := make([]numberField, 0, budgetField+1)
	for i := 1; i <= loanSlots; i++ {
		loans = append(loans,
			newNumberField(fmt.Sprintf("Loan %d balance", i), ""),
			newNumberField(fmt.Sprintf("Loan %d rate (%%)", i), ""),
		)
	}
	loans = append(loans, newNumberField("Total monthly payment", defaultBudget))
	m.fields[PrioritiesTab] = loans

	m.fields[ExtraPaymentTab][0].focus()
	m.fields[PrioritiesTab][0].focus()

	m.recomputeProjection()
	m.recomputeComparison()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % Tab(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.keys.Reset):
			for i := range m.fields[m.tab] {
				m.fields[m.tab][i].reset()
			}
			m.recompute()
			return m, nil
		}
	}

	field := &m.fields[m.tab][m.focus[m.tab]]
	before := field.input.Value()

	var cmd tea.Cmd
	*field, cmd = field.update(msg)
	if field.input.Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	fields := m.fields[m.tab]
	current := m.focus[m.tab]
	fields[current].blur()

	next := (current + delta + len(fields)) % len(fields)
	m.focus[m.tab] = next
	return fields[next].focus()
}

func (m *Model) recompute() {
	switch m.tab {
	case ExtraPaymentTab:
		m.recomputeProjection()
	case PrioritiesTab:
		m.recomputeComparison()
	}
}

func (m *Model) recomputeProjection() {
	m.projectionResult, m.projectionErr = nil, nil

	values, err := fieldValues(m.fields[ExtraPaymentTab])
	if err != nil {
		m.projectionErr = err
		return
	}

	result, err := m.projection.Project(context.Background(), domain.ProjectionInput{
		Balance:           values[balanceField],
		AnnualRatePercent: values[rateField],
		MonthlyPayment:    values[paymentField],
		ExtraPayment:      values[extraField],
	})
	if err != nil {
		m.log.Debug("projection failed", zap.Error(err))
		m.projectionErr = err
		return
	}
	m.projectionResult = &result
}

func (m *Model) recomputeComparison() {
	m.comparison, m.comparisonErr = nil, nil

	values, err := fieldValues(m.fields[PrioritiesTab])
	if err != nil {
		m.comparisonErr = err
		return
	}

	// Empty slots are left out so the loan limit counts only filled rows.
	loans := make([]amortization.Loan, 0, loanSlots)
	for i := 0; i < loanSlots; i++ {
		if values[2*i] == 0 {
			continue
		}
		loans = append(loans, amortization.Loan{
			Name:              fmt.Sprintf("Loan %d", i+1),
			Balance:           values[2*i],
			AnnualRatePercent: values[2*i+1],
		})
	}

	c, err := m.strategy.Compare(context.Background(), domain.PortfolioInput{
		Loans:         loans,
		MonthlyBudget: values[budgetField],
	})
	if err != nil {
		if !errors.Is(err, service.ErrNoLoans) {
			m.log.Debug("comparison failed", zap.Error(err))
		}
		m.comparisonErr = err
		return
	}
	m.comparison = &c
}

func fieldValues(fields []numberField) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := f.value()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
