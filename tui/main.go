package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sidharthgehlot/TidyDesk/app"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return tm.m.Init()
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := tm.m.Update(msg)
	return tm, cmd
}

func (tm teaModel) View() string {
	return tm.m.View()
}

// Run 启动交互界面，直到用户退出
func Run(a *app.App) error {
	logger.Get().Info().Msg("启动 TUI 界面")

	m := newModel(a)
	p := tea.NewProgram(teaModel{m: m}, tea.WithAltScreen())

	_, err := p.Run()
	if err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
	} else {
		logger.Get().Info().Msg("TUI 正常退出")
	}

	return err
}
