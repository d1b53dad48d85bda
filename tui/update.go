package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sidharthgehlot/TidyDesk/app"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case scanDoneMsg:
		m.summary = msg.summary
		m.state = StatePreview
		return m, nil

	case cleanDoneMsg:
		m.outcome = msg.outcome
		m.message = msg.outcome.Message()
		m.state = StateDone
		return m, nil

	case restoreDoneMsg:
		m.restored = msg.result
		m.message = app.RestoreMessage(msg.result, msg.err)
		m.state = StateDone
		return m, nil

	case errMsg:
		m.err = msg
		m.message = msg.Error()
		m.state = StateDone
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == StateHome {
		return m, m.updateHomeWidgets(msg)
	}
	return m, nil
}

func (m *model) busy() bool {
	return m.state == StateScanning || m.state == StateCleaning || m.state == StateRestoring
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateHome:
		return m.updateHomePhase(msg)

	case StatePreview:
		switch msg.String() {
		case "enter":
			if m.summary.Total == 0 {
				m.goHome()
				return m, nil
			}
			m.state = StateCleaning
			return m, tea.Batch(m.spinner.Tick, cleanCmd(m.app, m.source))
		case "esc", "q":
			m.goHome()
		}

	case StateConfirmRestore:
		switch msg.String() {
		case "y", "Y", "enter":
			m.state = StateRestoring
			return m, tea.Batch(m.spinner.Tick, restoreCmd(m.app, m.restoreDir))
		case "n", "N", "esc", "q":
			m.goHome()
		}

	case StateDone:
		switch msg.String() {
		case "enter", "esc":
			m.goHome()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *model) updateHomePhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.nextFocus()
		return m, nil
	case "enter":
		return m.handleEnterKey()
	case "q":
		if m.focus == FocusActions {
			return m, tea.Quit
		}
	}
	return m, m.updateHomeWidgets(msg)
}

func (m *model) updateHomeWidgets(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == FocusPathInput {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.actionList, cmd = m.actionList.Update(msg)
	}
	return cmd
}

func (m *model) nextFocus() {
	if m.focus == FocusActions {
		m.focus = FocusPathInput
		m.pathInput.Focus()
	} else {
		m.focus = FocusActions
		m.pathInput.Blur()
	}
	m.actionList.KeyMap.CursorUp.SetEnabled(m.focus == FocusActions)
	m.actionList.KeyMap.CursorDown.SetEnabled(m.focus == FocusActions)
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focus == FocusPathInput {
		if m.pathInput.Value() == "" {
			return m, nil
		}
		return m.startScan(m.pathInput.Value())
	}

	item, ok := m.actionList.SelectedItem().(actionItem)
	if !ok {
		return m, nil
	}
	switch item.kind {
	case actionDesktop:
		return m.startScan("desktop")
	case actionDownloads:
		return m.startScan("downloads")
	case actionRestore:
		m.state = StateConfirmRestore
	}
	return m, nil
}

func (m *model) startScan(arg string) (tea.Model, tea.Cmd) {
	source, err := app.ResolveSource(arg)
	if err != nil {
		m.err = err
		m.message = err.Error()
		m.state = StateDone
		return m, nil
	}
	m.source = source
	m.state = StateScanning
	logger.Get().Debug().Str("source", source).Msg("开始预览")
	return m, tea.Batch(m.spinner.Tick, scanCmd(m.app, source))
}

// goHome 回到首页并清空上一次的结果
func (m *model) goHome() {
	m.state = StateHome
	m.summary = nil
	m.outcome = nil
	m.restored = nil
	m.message = ""
	m.err = nil
	m.pathInput.Reset()
	m.refreshActions()
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width := msg.Width

	m.actionList.SetWidth(width - 4)
	m.pathInput.Width = width - 10
}

func scanCmd(a *app.App, source string) tea.Cmd {
	return func() tea.Msg {
		summary, err := a.Scan(source)
		if err != nil {
			return errMsg(err)
		}
		return scanDoneMsg{summary: summary}
	}
}

func cleanCmd(a *app.App, source string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := a.Clean(source)
		if err != nil {
			return errMsg(err)
		}
		return cleanDoneMsg{outcome: outcome}
	}
}

func restoreCmd(a *app.App, dest string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.Restore(dest)
		return restoreDoneMsg{result: result, err: err}
	}
}
