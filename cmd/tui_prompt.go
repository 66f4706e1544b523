package cmd

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var autocompleteStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#F25D94"))

var promptCommands = []string{
	"roll ", "roll all", "clear", "history", "count ", "size d", "speed ",
	"reset", "settings", "quit",
}

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

// promptModel is the ':' command line with completion and recall.
type promptModel struct {
	input       textinput.Model
	suggestions list.Model
	showList    bool
	history     []string
	historyIdx  int
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "roll 1, roll all, size d20, speed 1.5 ..."
	ti.CharLimit = 64
	ti.Width = 40

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 30, 4)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)
	sugList.SetShowPagination(false)

	return promptModel{
		input:       ti,
		suggestions: sugList,
		historyIdx:  -1,
	}
}

func (p *promptModel) setWidth(w int) {
	if w > 10 {
		p.input.Width = w - 10
		p.suggestions.SetWidth(w - 6)
	}
}

func (p *promptModel) open() tea.Cmd {
	p.input.SetValue("")
	p.historyIdx = -1
	p.updateSuggestions()
	return p.input.Focus()
}

func (p *promptModel) close() {
	p.input.Blur()
	p.input.SetValue("")
	p.showList = false
}

func (p *promptModel) updateSuggestions() {
	val := strings.ToLower(p.input.Value())
	var items []list.Item
	if val != "" {
		for _, c := range promptCommands {
			if strings.HasPrefix(c, val) && len(val) < len(c) {
				items = append(items, suggestion(c))
			}
		}
	}
	p.suggestions.SetItems(items)
	p.showList = len(items) > 0
	if p.showList {
		p.suggestions.SetHeight(min(len(items), 4))
		p.suggestions.ResetSelected()
	}
}

// submit returns the entered line and records it for recall.
func (p *promptModel) submit() string {
	val := strings.TrimSpace(p.input.Value())
	if val != "" && (len(p.history) == 0 || p.history[len(p.history)-1] != val) {
		p.history = append(p.history, val)
	}
	p.close()
	return val
}

// update handles keys other than enter and esc.
func (p *promptModel) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyUp:
		if p.showList {
			p.suggestions, cmd = p.suggestions.Update(msg)
			return cmd
		}
		if len(p.history) > 0 {
			if p.historyIdx == -1 {
				p.historyIdx = len(p.history) - 1
			} else if p.historyIdx > 0 {
				p.historyIdx--
			}
			p.input.SetValue(p.history[p.historyIdx])
			p.input.CursorEnd()
		}
	case tea.KeyDown:
		if p.showList {
			p.suggestions, cmd = p.suggestions.Update(msg)
			return cmd
		}
		if p.historyIdx != -1 {
			if p.historyIdx < len(p.history)-1 {
				p.historyIdx++
				p.input.SetValue(p.history[p.historyIdx])
			} else {
				p.historyIdx = -1
				p.input.SetValue("")
			}
			p.input.CursorEnd()
		}
	case tea.KeyTab:
		if i, ok := p.suggestions.SelectedItem().(suggestion); ok && p.showList {
			p.input.SetValue(string(i))
			p.input.CursorEnd()
			p.updateSuggestions()
		}
	default:
		p.input, cmd = p.input.Update(msg)
		p.updateSuggestions()
	}
	return cmd
}

func (p *promptModel) view() string {
	if p.showList {
		return lipgloss.JoinVertical(lipgloss.Left, p.input.View(), autocompleteStyle.Render(p.suggestions.View()))
	}
	return p.input.View()
}
