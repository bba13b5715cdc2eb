// Command gonhanh-tui is a small bubbletea program that visualizes the
// engine's output as keys are typed: it shows the live output text and
// the most recent edit (backspace count and inserted characters), for
// debugging the transformation rules interactively. Individual cells and
// their shape/mark/stroke state are not shown.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nguyennhuanhle/gonhanh.org/pkg/gonhanh"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type model struct {
	engine *gonhanh.Engine
	method gonhanh.Method
	line   []rune
	last   string
}

func initialModel() model {
	eng := gonhanh.New()
	return model{engine: eng, method: gonhanh.MethodTelex}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyF1:
			m.method = gonhanh.MethodTelex
			m.engine.SetMethod(m.method)
			m.line = nil
			return m, nil
		case tea.KeyF2:
			m.method = gonhanh.MethodVNI
			m.engine.SetMethod(m.method)
			m.line = nil
			return m, nil
		case tea.KeyBackspace:
			res := m.engine.ProcessKey(0x08, false, false, false)
			m.applyEdit(res)
			if len(m.line) > 0 {
				m.line = m.line[:len(m.line)-1]
			}
			return m, nil
		case tea.KeySpace:
			res := m.engine.ProcessKey(uint16(' '), false, false, false)
			m.applyEdit(res)
			m.line = append(m.line, ' ')
			return m, nil
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				code, shift, ok := letterCode(r)
				if !ok {
					continue
				}
				res := m.engine.ProcessKey(code, shift, false, false)
				m.applyEdit(res)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *model) applyEdit(res gonhanh.EditResult) {
	if res.Action == gonhanh.ActionNone {
		return
	}
	n := len(m.line) - int(res.BackspaceCount)
	if n < 0 {
		n = 0
	}
	m.line = m.line[:n]
	m.line = append(m.line, res.Chars[:res.ValidLen]...)
	m.last = fmt.Sprintf("backspace=%d chars=%q", res.BackspaceCount, string(res.Chars[:res.ValidLen]))
}

func letterCode(r rune) (code uint16, shift, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return uint16(r - 'a' + 'A'), false, true
	case r >= 'A' && r <= 'Z':
		return uint16(r), true, true
	case r >= '0' && r <= '9':
		return uint16(r), false, true
	default:
		return 0, false, false
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gonhanh composition visualizer"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(string(m.line)))
	b.WriteString("\n")
	if m.last != "" {
		b.WriteString(helpStyle.Render(m.last))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("method=%s  F1=Telex F2=VNI Esc=quit", m.method)))
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gonhanh-tui: %v\n", err)
		os.Exit(1)
	}
}
