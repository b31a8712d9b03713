// Package ui implements the Bubble Tea front-end: a preset list on the
// left, the device snapshot and readiness report on the right, and a
// launch flow with confirmation.
package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/upready/internal/launcher"
	"github.com/VoxDroid/upready/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/upready/internal/tui/model"
)

// pollInterval is how often the UI observes the background collection.
const pollInterval = 150 * time.Millisecond

type focusArea int

const (
	focusList focusArea = iota
	focusPath
	focusArgs
)

// TuiModel is the Bubble Tea model used by cmd/tui.
type TuiModel struct {
	uiModel *modelpkg.UIModel
	list    list.Model
	vp      viewport.Model
	path    textinput.Model
	args    textinput.Model

	width  int
	height int

	focus      focusArea
	elevate    bool
	confirming bool
	showHelp   bool
	status     string
	lastPreset string
}

// Messages
type tickMsg time.Time

type presetItem struct {
	p adapters.PresetSummary
}

func (i presetItem) Title() string { return i.p.Name }
func (i presetItem) Description() string {
	if i.p.Args == "" {
		return i.p.Description
	}
	return i.p.Description + "  (" + i.p.Args + ")"
}
func (i presetItem) FilterValue() string { return i.p.Name + " " + i.p.Description }

// NewModel builds the TUI model over the shared UIModel.
func NewModel(ui *modelpkg.UIModel) *TuiModel {
	items := make([]list.Item, 0, len(ui.Presets()))
	for _, p := range ui.Presets() {
		items = append(items, presetItem{p: p})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "upready — installer presets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	vp := viewport.New(0, 0)

	path := textinput.New()
	path.Placeholder = "path to " + launcher.DefaultInstallerName
	path.Prompt = "installer> "

	args := textinput.New()
	args.Placeholder = "extra arguments (optional)"
	args.Prompt = "args> "

	return &TuiModel{uiModel: ui, list: l, vp: vp, path: path, args: args}
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(ui *modelpkg.UIModel) *tea.Program {
	m := NewModel(ui)
	return tea.NewProgram(m, tea.WithAltScreen())
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *TuiModel) Init() tea.Cmd {
	// kick off the first collection; the tick below polls for completion
	m.uiModel.StartRefresh()
	return tick()
}

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tickMsg:
		if m.uiModel.Poll() {
			m.refreshDetail()
		}
		if m.uiModel.Refreshing() {
			return m, tick()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m *TuiModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	if m.confirming {
		switch s {
		case "y", "Y", "enter":
			m.confirming = false
			m.doLaunch()
		case "n", "N", "esc":
			m.confirming = false
			m.status = "launch cancelled"
		}
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// text inputs swallow printable keys when focused
	if m.focus == focusPath || m.focus == focusArgs {
		switch s {
		case "esc":
			m.setFocus(focusList)
			return m, nil
		case "tab":
			m.cycleFocus()
			return m, nil
		case "enter":
			m.setFocus(focusList)
			m.refreshDetail()
			return m, nil
		}
		var cmd tea.Cmd
		if m.focus == focusPath {
			m.path, cmd = m.path.Update(msg)
		} else {
			m.args, cmd = m.args.Update(msg)
		}
		m.refreshDetail()
		return m, cmd
	}

	// while the filter input is live every key belongs to the list
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if sel := m.selectedPreset(); sel != m.lastPreset {
			m.lastPreset = sel
			m.refreshDetail()
		}
		return m, cmd
	}

	switch s {
	case "q", "esc":
		m.uiModel.Close()
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "tab":
		m.cycleFocus()
		return m, nil
	case "r":
		if m.uiModel.StartRefresh() {
			m.status = "collecting device facts..."
			return m, tick()
		}
		m.status = "a check is already running"
		return m, nil
	case "e":
		m.elevate = !m.elevate
		m.refreshDetail()
		return m, nil
	case "c":
		if line, err := m.assembledLine(); err == nil {
			if err := clipboard.WriteAll(line); err != nil {
				m.status = "clipboard unavailable: " + err.Error()
			} else {
				m.status = "command line copied"
			}
		} else {
			m.status = err.Error()
		}
		return m, nil
	case "enter", "l":
		if err := m.uiModel.ValidatePath(m.path.Value()); err != nil {
			m.status = launcher.Friendly(err)
			return m, nil
		}
		m.confirming = true
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if sel := m.selectedPreset(); sel != m.lastPreset {
		m.lastPreset = sel
		m.refreshDetail()
	}
	return m, cmd
}

func (m *TuiModel) doLaunch() {
	preset := m.selectedPreset()
	err := m.uiModel.Launch(m.path.Value(), preset, m.args.Value(), m.elevate)
	if err != nil {
		m.status = launcher.Friendly(err)
		return
	}
	m.status = "installer started (" + preset + ")"
}

func (m *TuiModel) selectedPreset() string {
	if it, ok := m.list.SelectedItem().(presetItem); ok {
		return it.p.Name
	}
	return ""
}

func (m *TuiModel) assembledLine() (string, error) {
	preset := m.selectedPreset()
	if preset == "" {
		return "", fmt.Errorf("no preset selected")
	}
	return m.uiModel.BuildCommand(preset, m.args.Value())
}

func (m *TuiModel) cycleFocus() {
	switch m.focus {
	case focusList:
		m.setFocus(focusPath)
	case focusPath:
		m.setFocus(focusArgs)
	default:
		m.setFocus(focusList)
	}
}

func (m *TuiModel) setFocus(f focusArea) {
	m.focus = f
	m.path.Blur()
	m.args.Blur()
	switch f {
	case focusPath:
		m.path.Focus()
	case focusArgs:
		m.args.Focus()
	}
}

func (m *TuiModel) layout() {
	listW := m.width / 3
	if listW < 24 {
		listW = 24
	}
	detailW := m.width - listW - 4
	if detailW < 20 {
		detailW = 20
	}
	bodyH := m.height - 6
	if bodyH < 6 {
		bodyH = 6
	}
	m.list.SetSize(listW, bodyH)
	m.vp.Width = detailW
	m.vp.Height = bodyH
	m.path.Width = m.width - 14
	m.args.Width = m.width - 14
	m.refreshDetail()
}

func (m *TuiModel) refreshDetail() {
	info, rep, ok := m.uiModel.Snapshot()
	line, lineErr := m.assembledLine()
	m.vp.SetContent(renderDetail(detailState{
		haveInfo:   ok,
		refreshing: m.uiModel.Refreshing(),
		info:       info,
		report:     rep,
		line:       line,
		lineErr:    lineErr,
		elevate:    m.elevate,
		width:      m.vp.Width,
	}))
}

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func (m *TuiModel) View() string {
	if m.showHelp {
		return modalStyle.Render(helpText)
	}
	if m.confirming {
		line, _ := m.assembledLine()
		return modalStyle.Render(renderConfirm(m.path.Value(), line, m.elevate))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), "  ", m.vp.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.path.View(),
		m.args.View(),
		statusStyle.Render(m.statusLine()),
	)
}

func (m *TuiModel) statusLine() string {
	if m.uiModel.Refreshing() {
		return "collecting device facts...  (? for help)"
	}
	if m.status != "" {
		return m.status + "  (? for help)"
	}
	return "r refresh · tab focus · e elevation · c copy · enter launch · q quit"
}

const helpText = `Help:

?       show this help
q / Esc quit
r       re-check device facts
Tab     move focus (presets, installer path, extra args)
e       toggle elevated launch
c       copy the assembled command line
Enter   launch the installer (asks for confirmation)
/       filter presets`
