package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/haptics"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/session"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/settings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	rowCount = iota
	rowSize
	rowSpeed
	rowTotal
)

var (
	rowLabels = [rowTotal]string{"Number of dice", "Dice size", "Animation speed"}

	optionStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedOptionStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4"))

	activeRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F25D94"))
)

func (m *model) updateSettings(msg tea.KeyMsg) tea.Cmd {
	if m.confirmReset {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.confirmReset = false
			return m.saveSetting(session.Action{Kind: session.ActionReset})
		case key.Matches(msg, m.keys.No):
			m.confirmReset = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.pop()
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < rowTotal-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		return m.step(-1)
	case key.Matches(msg, m.keys.Right):
		return m.step(1)
	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	return nil
}

// step moves the selected row's option by delta and writes it through.
// At either end of the range nothing happens.
func (m *model) step(delta int) tea.Cmd {
	cur := m.sess.Store().Current()

	var act session.Action
	switch m.row {
	case rowCount:
		i := nearestInt(settings.CountOptions, cur.DiceCount) + delta
		if i < 0 || i >= len(settings.CountOptions) {
			return nil
		}
		act = session.Action{Kind: session.ActionSetCount, Count: settings.CountOptions[i]}
	case rowSize:
		i := nearestInt(settings.SizeOptions, cur.DiceSize) + delta
		if i < 0 || i >= len(settings.SizeOptions) {
			return nil
		}
		act = session.Action{Kind: session.ActionSetSize, Size: settings.SizeOptions[i]}
	case rowSpeed:
		i := nearestFloat(settings.SpeedOptions, cur.AnimationSpeed) + delta
		if i < 0 || i >= len(settings.SpeedOptions) {
			return nil
		}
		act = session.Action{Kind: session.ActionSetSpeed, Speed: settings.SpeedOptions[i]}
	default:
		return nil
	}

	m.feedback.Impact(haptics.ImpactLight)
	return m.saveSetting(act)
}

func nearestInt(options []int, v int) int {
	best := 0
	for i, o := range options {
		if abs(o-v) < abs(options[best]-v) {
			best = i
		}
	}
	return best
}

func nearestFloat(options []float64, v float64) int {
	best := 0
	for i, o := range options {
		if math.Abs(o-v) < math.Abs(options[best]-v) {
			best = i
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (m *model) viewSettings() string {
	cur := m.sess.Store().Current()

	counts := make([]string, len(settings.CountOptions))
	for i, n := range settings.CountOptions {
		counts[i] = fmt.Sprintf("%d", n)
	}
	sizes := make([]string, len(settings.SizeOptions))
	for i, n := range settings.SizeOptions {
		sizes[i] = fmt.Sprintf("d%d", n)
	}
	speeds := make([]string, len(settings.SpeedOptions))
	for i, x := range settings.SpeedOptions {
		speeds[i] = fmt.Sprintf("%gx", x)
	}

	rows := []string{
		m.renderRow(rowCount, counts, nearestInt(settings.CountOptions, cur.DiceCount)),
		m.renderRow(rowSize, sizes, nearestInt(settings.SizeOptions, cur.DiceSize)),
		m.renderRow(rowSpeed, speeds, nearestFloat(settings.SpeedOptions, cur.AnimationSpeed)),
	}

	info := panelStyle.Render(strings.Join([]string{
		fmt.Sprintf("Dice: %d to %d", settings.MinDiceCount, settings.MaxDiceCount),
		"Sizes: standard D&D dice (d4 to d100)",
		"Speed: 0.5x to 2.0x",
		"",
		"Current: " + cur.Summary(),
	}, "\n"))

	sections := []string{
		titleStyle.Render("Settings"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		info,
	}

	var helpView string
	if m.confirmReset {
		sections = append(sections, errorStyle.Render("Reset all settings to defaults (2 dice, d6, 1.0x)?"))
		helpView = m.help.View(confirmHelp(m.keys))
	} else {
		helpView = m.help.View(settingsHelp(m.keys))
	}
	sections = append(sections, "", infoStyle.Render(helpView))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) renderRow(row int, options []string, selected int) string {
	label := rowLabels[row]
	if row == m.row {
		label = activeRowStyle.Render("> " + label)
	} else {
		label = "  " + label
	}

	cells := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			cells[i] = selectedOptionStyle.Render(o)
		} else {
			cells[i] = optionStyle.Render(o)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, "  "+lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}
