// Package tui implements the interactive profit form: one numeric input,
// a calculate action and a result panel.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/solver-estate/internal/models"
	"github.com/napolitain/solver-estate/internal/solver/profit"
)

// MinBudget is the smallest value the form accepts
const MinBudget = 1

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	inputStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	metricStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2).Align(lipgloss.Center)
)

// Form is the bubbletea model of the profit form
type Form struct {
	solver *profit.Solver
	input  string
	result *models.Allocation
	err    error
}

// NewForm creates a form seeded with an initial budget
func NewForm(solver *profit.Solver, initial int) *Form {
	return &Form{
		solver: solver,
		input:  strconv.Itoa(max(initial, MinBudget)),
	}
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return f, tea.Quit
	case tea.KeyEnter:
		f.calculate()
	case tea.KeyBackspace:
		if len(f.input) > 0 {
			f.input = f.input[:len(f.input)-1]
		}
	case tea.KeyUp:
		f.step(1)
	case tea.KeyDown:
		f.step(-1)
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r == 'q' {
				return f, tea.Quit
			}
			if r >= '0' && r <= '9' {
				f.input += string(r)
			}
		}
	}
	return f, nil
}

// step moves the input by delta, never below MinBudget
func (f *Form) step(delta int) {
	n, err := strconv.Atoi(f.input)
	if err != nil {
		n = MinBudget
	} else {
		n += delta
	}
	f.input = strconv.Itoa(max(n, MinBudget))
}

func (f *Form) calculate() {
	f.result, f.err = nil, nil

	n, err := strconv.Atoi(f.input)
	if err != nil {
		f.err = fmt.Errorf("enter a whole number")
		return
	}
	if n < MinBudget {
		f.err = fmt.Errorf("value must be at least %d", MinBudget)
		return
	}

	f.result, f.err = f.solver.Solve(n)
}

// Result returns the last calculated allocation, if any
func (f *Form) Result() *models.Allocation {
	return f.result
}

// Err returns the last calculation error, if any
func (f *Form) Err() error {
	return f.err
}

// Input returns the current input text
func (f *Form) Input() string {
	return f.input
}

// View implements tea.Model
func (f *Form) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏗️  Max Profit Property Development"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Dynamic Programming based decision system"))
	b.WriteString("\n\n")
	b.WriteString("Enter total available time units\n")
	b.WriteString(inputStyle.Render(f.input + "▏"))
	b.WriteString("\n")

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + f.err.Error()))
		b.WriteString("\n")
	}

	if f.result != nil {
		b.WriteString("\n📊 Optimal Result\n")
		b.WriteString(successStyle.Render("💰 Maximum Earnings: " + models.FormatEarnings(f.result.Earnings)))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			metric("🎭 Theatres", f.result.Counts.Theatre),
			metric("🍺 Pubs", f.result.Counts.Pub),
			metric("🏢 Commercial Parks", f.result.Counts.CommercialPark),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter: calculate • ↑/↓: step • q/esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func metric(label string, value int) string {
	return metricStyle.Render(fmt.Sprintf("%s\n%d", label, value))
}
