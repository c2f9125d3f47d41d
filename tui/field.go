package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// numberField is a labelled text input that accepts a non-negative amount.
type numberField struct {
	label   string
	initial string
	input   textinput.Model
}

func newNumberField(label, initial string) numberField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = 18
	ti.Width = 16
	ti.SetValue(initial)
	return numberField{label: label, initial: initial, input: ti}
}

func (f *numberField) focus() tea.Cmd {
	return f.input.Focus()
}

func (f *numberField) blur() {
	f.input.Blur()
}

func (f *numberField) reset() {
	f.input.SetValue(f.initial)
}

func (f numberField) update(msg tea.Msg) (numberField, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// value parses the current input. An empty input counts as zero.
func (f numberField) value() (float64, error) {
	v, err := parseAmount(f.input.Value())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f.label, err)
	}
	return v, nil
}

// parseAmount accepts plain numbers with optional thousands separators
// (spaces, commas or underscores) and a decimal point.
func parseAmount(s string) (float64, error) {
	s = strings.NewReplacer(" ", "", ",", "", "_", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q cannot be negative", s)
	}
	return v, nil
}
