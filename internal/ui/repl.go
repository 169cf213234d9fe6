// Package ui implements the interactive REPL as a Bubble Tea program.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"shunt/internal/diagfmt"
	"shunt/internal/driver"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// maxHistory bounds scrollback so long sessions do not grow the view forever.
const maxHistory = 200

type entry struct {
	expr   string
	output string
	failed bool
}

type replModel struct {
	input     textinput.Model
	history   []entry
	width     int
	precision int
	quitting  bool
}

// NewReplModel returns a Bubble Tea model for the interactive calculator.
func NewReplModel(precision int) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "2 + 3 * 4"
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Focus()

	return &replModel{
		input:     ti,
		width:     80,
		precision: precision,
	}
}

// Run starts the REPL and blocks until the user quits.
func Run(precision int) error {
	program := tea.NewProgram(NewReplModel(precision))
	_, err := program.Run()
	return err
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			expr := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if expr == "" {
				return m, nil
			}
			if expr == "quit" || expr == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.push(evaluate(expr, m.precision))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) push(e entry) {
	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func evaluate(expr string, precision int) entry {
	res := driver.EvaluateExpr(expr, driver.DefaultMaxDiagnostics)
	if !res.OK {
		res.Bag.Sort()
		first, found := res.Bag.FirstError()
		if !found {
			return entry{expr: expr, output: "evaluation failed", failed: true}
		}
		return entry{
			expr:   expr,
			output: fmt.Sprintf("%s: %s", first.Code.ID(), first.Message),
			failed: true,
		}
	}

	var sb strings.Builder
	if err := diagfmt.FormatResult(&sb, res.Value, diagfmt.ResultOpts{Precision: precision}); err != nil {
		return entry{expr: expr, output: err.Error(), failed: true}
	}
	return entry{expr: expr, output: strings.TrimSpace(sb.String())}
}

func (m *replModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("shunt"))
	sb.WriteString(helpStyle.Render("  infix in, values out"))
	sb.WriteString("\n\n")

	for _, e := range m.history {
		line := promptStyle.Render("> ") + e.expr
		sb.WriteString(runewidth.Truncate(line, m.width, "…"))
		sb.WriteString("\n")

		style := valueStyle
		if e.failed {
			style = errStyle
		}
		sb.WriteString(runewidth.Truncate(style.Render(e.output), m.width, "…"))
		sb.WriteString("\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if !m.quitting {
		sb.WriteString(helpStyle.Render("enter to evaluate · ctrl+d to quit"))
		sb.WriteString("\n")
	}
	return sb.String()
}
