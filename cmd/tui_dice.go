package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/animation"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/engine"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	dieWidth     = 7
	dialogHeight = 12
)

func (m *model) updateDice(msg tea.KeyMsg) tea.Cmd {
	if m.showCmd {
		return m.updatePrompt(msg)
	}
	if m.dialog != nil {
		if key.Matches(msg, m.keys.Close) {
			m.dialog = nil
			return nil
		}
		var cmd tea.Cmd
		*m.dialog, cmd = m.dialog.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.RollDie):
		idx := int(msg.Runes[0] - '1')
		if msg.String() == "0" {
			idx = 9
		}
		if idx >= len(m.sess.Dice()) {
			return nil
		}
		m.cursor = idx
		return m.roll(idx)

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.sess.Dice())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Roll):
		return m.roll(m.cursor)

	case key.Matches(msg, m.keys.RollAll):
		m.sess.RollAll()
		m.setStatus("New round: roll each die")

	case key.Matches(msg, m.keys.Clear):
		m.sess.Clear()
		m.setStatus("Results cleared")

	case key.Matches(msg, m.keys.History):
		m.openHistory()

	case key.Matches(msg, m.keys.Settings):
		m.push(screenSettings)

	case key.Matches(msg, m.keys.Command):
		m.showCmd = true
		return m.prompt.open()
	}
	return nil
}

func (m *model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.showCmd = false
		m.prompt.close()
		return nil
	case tea.KeyEnter:
		m.showCmd = false
		line := m.prompt.submit()
		if line == "" {
			return nil
		}
		return m.execute(line)
	}
	return m.prompt.update(msg)
}

// execute runs a command line against the table.
func (m *model) execute(line string) tea.Cmd {
	act, err := m.sess.Execute(line)
	if err != nil {
		m.setError(err)
		return nil
	}

	switch act.Kind {
	case session.ActionRollDie:
		m.cursor = act.Die
		if act.Started {
			m.setStatus("")
			return m.startSpin(act.Die, act.Timeline)
		}
		m.setStatus(act.Message)
	case session.ActionHistory:
		m.openHistory()
	case session.ActionSetCount, session.ActionSetSize, session.ActionSetSpeed, session.ActionReset:
		m.setStatus(settingMessage(act))
		return m.saveSetting(act)
	case session.ActionSettings:
		m.push(screenSettings)
	case session.ActionQuit:
		return tea.Quit
	default:
		m.setStatus(act.Message)
	}
	return nil
}

func settingMessage(act session.Action) string {
	switch act.Kind {
	case session.ActionSetCount:
		return fmt.Sprintf("Dice count set to %d", act.Count)
	case session.ActionSetSize:
		return fmt.Sprintf("Dice size set to d%d", act.Size)
	case session.ActionSetSpeed:
		return fmt.Sprintf("Animation speed set to %gx", act.Speed)
	case session.ActionReset:
		return "Settings reset to defaults"
	}
	return ""
}

func (m *model) roll(idx int) tea.Cmd {
	tl, started, err := m.sess.Activate(idx)
	if err != nil {
		m.setError(err)
		return nil
	}
	if !started {
		return nil
	}
	m.setStatus("")
	return m.startSpin(idx, tl)
}

// startSpin schedules the animation end event for die idx and makes sure
// the frame ticker is running.
func (m *model) startSpin(idx int, tl animation.Timeline) tea.Cmd {
	m.spins[idx] = spin{started: m.now(), timeline: tl}

	gen := m.sess.Generation()
	done := tea.Tick(tl.Duration(), func(time.Time) tea.Msg {
		return spinDoneMsg{gen: gen, die: idx}
	})
	if m.ticking {
		return done
	}
	m.ticking = true
	return tea.Batch(done, frameTick())
}

// land delivers the end event to the die unless the dice were replaced
// while it was spinning.
func (m *model) land(msg spinDoneMsg) tea.Cmd {
	if msg.gen != m.sess.Generation() {
		return nil
	}
	delete(m.spins, msg.die)
	if _, _, err := m.sess.Complete(msg.die); err != nil && !errors.Is(err, session.ErrNoSuchDie) {
		m.setError(err)
	}
	return nil
}

func (m *model) openHistory() {
	report := m.sess.History()
	m.title = "Roll results"
	if report.Empty {
		m.title = "Roll history"
	}
	vp := viewport.New(m.dialogWidth(), dialogHeight)
	vp.SetContent(report.String())
	m.dialog = &vp
}

func (m *model) dialogWidth() int {
	if m.width > 8 {
		return min(m.width-8, 48)
	}
	return 40
}

func (m *model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *model) setError(err error) {
	m.status = err.Error()
	m.failed = true
}

func (m *model) viewDice() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render("Dragon Dice")
	subtitle := subtitleStyle.Render(m.sess.Settings().Summary())

	sections := []string{title, subtitle, m.renderDice(), m.renderTotal()}

	if m.dialog != nil {
		sections = append(sections, dialogStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(m.title), m.dialog.View()),
		))
	}

	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	if m.showCmd {
		sections = append(sections, m.prompt.view())
	}

	var helpView string
	switch {
	case m.dialog != nil:
		helpView = m.help.View(dialogHelp(m.keys))
	default:
		helpView = m.help.View(diceHelp(m.keys))
	}
	sections = append(sections, "", infoStyle.Render(helpView))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) renderDice() string {
	now := m.now()
	var rows []string
	var row []string
	for i, d := range m.sess.Dice() {
		row = append(row, m.renderDie(i, d, now))
		if len(row) == 5 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *model) renderDie(i int, d *engine.Die, now time.Time) string {
	color := lipgloss.Color(d.Color())
	face := fmt.Sprintf("%d", d.Outcome())
	border := lipgloss.RoundedBorder()

	if s, ok := m.spins[i]; ok && d.Animating() {
		frame := s.timeline.Sample(now.Sub(s.started))
		face = frame.Glyph()
		if frame.Scale > 1 {
			border = lipgloss.ThickBorder()
		}
	}

	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Width(dieWidth).
		Align(lipgloss.Center).
		Render(face)

	label := fmt.Sprintf("%d", (i+1)%10)
	if i == m.cursor {
		label = "[" + label + "]"
	}
	label = lipgloss.NewStyle().Width(dieWidth + 2).Align(lipgloss.Center).Render(label)

	return lipgloss.NewStyle().MarginRight(1).Render(lipgloss.JoinVertical(lipgloss.Center, box, label))
}

func (m *model) renderTotal() string {
	total, ok := m.sess.Round().Total()
	if !ok {
		return ""
	}
	return totalStyle.Render(fmt.Sprintf("Total: %d", total))
}
