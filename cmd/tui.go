package cmd

import (
	"context"
	"time"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/animation"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/haptics"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)
)

const frameInterval = 50 * time.Millisecond

type screenID int

const (
	screenDice screenID = iota
	screenSettings
)

// spinFrameMsg redraws the spinning dice.
type spinFrameMsg time.Time

// spinDoneMsg is the animation end event of one die. gen ties it to the set
// of dice that was on the table when the roll started.
type spinDoneMsg struct {
	gen int
	die int
}

// settingSavedMsg reports a store write run as a command.
type settingSavedMsg struct {
	kind session.ActionKind
	err  error
}

type spin struct {
	started  time.Time
	timeline animation.Timeline
}

type model struct {
	ctx      context.Context
	sess     *session.Session
	feedback haptics.Feedback
	now      func() time.Time

	stack  []screenID
	width  int
	height int
	keys   keyMap
	help   help.Model

	// dice screen
	cursor  int
	spins   map[int]spin
	ticking bool
	status  string
	failed  bool
	dialog  *viewport.Model
	title   string
	prompt  promptModel
	showCmd bool

	// settings screen
	row          int
	confirmReset bool
}

func newModel(ctx context.Context, sess *session.Session, fb haptics.Feedback) *model {
	if fb == nil {
		fb = haptics.Nop{}
	}
	return &model{
		ctx:      ctx,
		sess:     sess,
		feedback: fb,
		now:      time.Now,
		stack:    []screenID{screenDice},
		keys:     newKeyMap(),
		help:     help.New(),
		spins:    make(map[int]spin),
		prompt:   newPromptModel(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) top() screenID {
	return m.stack[len(m.stack)-1]
}

func (m *model) push(s screenID) {
	m.stack = append(m.stack, s)
	if s == screenSettings {
		m.row = 0
		m.confirmReset = false
	}
}

// pop returns to the previous screen. The last screen stays.
func (m *model) pop() {
	if len(m.stack) <= 1 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
	if m.top() == screenDice {
		m.refresh()
	}
}

// refresh picks up saved settings. Spins of dice that were replaced are dropped.
func (m *model) refresh() {
	gen := m.sess.Generation()
	m.sess.Refresh()
	if m.sess.Generation() != gen {
		m.spins = make(map[int]spin)
		m.cursor = 0
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.setWidth(msg.Width)
		if m.dialog != nil {
			m.dialog.Width = m.dialogWidth()
		}
		return m, nil

	case spinFrameMsg:
		if len(m.spins) == 0 {
			m.ticking = false
			return m, nil
		}
		return m, frameTick()

	case spinDoneMsg:
		return m, m.land(msg)

	case settingSavedMsg:
		if m.top() == screenDice {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.top() {
		case screenSettings:
			return m, m.updateSettings(msg)
		default:
			return m, m.updateDice(msg)
		}
	}
	return m, nil
}

func (m *model) View() string {
	switch m.top() {
	case screenSettings:
		return m.viewSettings()
	default:
		return m.viewDice()
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return spinFrameMsg(t)
	})
}

// saveSetting runs the store write for act off the update loop.
func (m *model) saveSetting(act session.Action) tea.Cmd {
	ctx, sess := m.ctx, m.sess
	return func() tea.Msg {
		return settingSavedMsg{kind: act.Kind, err: sess.ApplySetting(ctx, act)}
	}
}

func RunTUI(ctx context.Context, sess *session.Session, fb haptics.Feedback) error {
	m := newModel(ctx, sess, fb)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
