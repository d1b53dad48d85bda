package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sidharthgehlot/TidyDesk/app"
	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/scanner"
)

type State int

const (
	StateHome State = iota
	StateScanning
	StatePreview
	StateCleaning
	StateDone
	StateConfirmRestore
	StateRestoring
)

type Focus int

const (
	FocusActions Focus = iota
	FocusPathInput
)

type action int

const (
	actionDesktop action = iota
	actionDownloads
	actionRestore
)

type model struct {
	app        *app.App
	state      State
	focus      Focus
	source     string
	restoreDir string
	summary    *scanner.Summary
	outcome    *app.CleanOutcome
	restored   *internal.RestoreResult
	message    string
	actionList list.Model
	pathInput  textinput.Model
	bar        progress.Model
	spinner    spinner.Model
	err        error
}

func newModel(a *app.App) *model {
	actionList := list.New(nil, list.NewDefaultDelegate(), 0, 8)
	actionList.Title = "要整理哪里？"
	actionList.SetShowStatusBar(false)
	actionList.SetFilteringEnabled(false)
	actionList.Styles.Title = titleStyle
	actionList.Styles.TitleBar = titleStyle

	pathInput := textinput.New()
	pathInput.Placeholder = "或输入其它目录（例如：~/Documents/杂项）"
	pathInput.Prompt = "> "
	pathInput.PromptStyle = focusedPromptStyle
	pathInput.TextStyle = textStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &model{
		app:        a,
		state:      StateHome,
		focus:      FocusActions,
		actionList: actionList,
		pathInput:  pathInput,
		bar:        bar,
		spinner:    s,
	}
	m.refreshActions()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// refreshActions 根据是否有可恢复的整理重建首页菜单
func (m *model) refreshActions() {
	items := []list.Item{
		actionItem{kind: actionDesktop, title: "整理桌面", desc: "~/Desktop"},
		actionItem{kind: actionDownloads, title: "整理下载", desc: "~/Downloads"},
	}
	m.restoreDir = ""
	if last, ok := m.app.LastCleaned(); ok {
		m.restoreDir = last
		items = append(items, actionItem{kind: actionRestore, title: "恢复上次整理", desc: last})
	}
	m.actionList.SetItems(items)
	m.actionList.ResetSelected()
}

type actionItem struct {
	kind  action
	title string
	desc  string
}

func (a actionItem) Title() string       { return a.title }
func (a actionItem) Description() string { return a.desc }
func (a actionItem) FilterValue() string { return a.title }
