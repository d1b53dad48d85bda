package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

func (m *model) View() string {
	switch m.state {
	case StateHome:
		return m.homeView()
	case StateScanning:
		return m.busyView("🔍 正在查看文件夹...", m.source)
	case StatePreview:
		return m.previewView()
	case StateCleaning:
		return m.busyView("🧹 正在整理...", m.source)
	case StateConfirmRestore:
		return m.confirmView()
	case StateRestoring:
		return m.busyView("↩️  正在恢复...", m.restoreDir)
	case StateDone:
		return m.doneView()
	default:
		return "未知状态"
	}
}

func (m *model) homeView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🗂  TidyDesk") + "\n")
	b.WriteString(hintStyle.Render("按类型整理文件，什么都不删除") + "\n\n")

	if m.focus == FocusActions {
		b.WriteString(focusedStyle.Render(m.actionList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.actionList.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("自定义目录：") + "\n")
	if m.focus == FocusPathInput {
		b.WriteString(focusedStyle.Render(m.pathInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.pathInput.View()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点\n")
	b.WriteString("  • Enter 预览所选目录\n")
	b.WriteString("  • q / Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) busyView(title, dir string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(m.spinner.View() + " ")
	b.WriteString(filePathStyle.Render(dir))

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) previewView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📋 整理预览") + "\n")
	b.WriteString(filePathStyle.Render(m.summary.Source) + "\n\n")

	if m.summary.Total == 0 {
		b.WriteString(successTitleStyle.Render("这个文件夹本来就很整洁") + "\n")
		b.WriteString(hintStyle.Render("按 Enter 返回") + "\n")
		return lipgloss.NewStyle().Padding(2).Render(b.String())
	}

	b.WriteString(statsBoxStyle.Render(m.renderPreview()) + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("按 Enter 移动到 %s/，Esc 返回", internal.DestFolderName)) + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderPreview() string {
	var b strings.Builder
	for _, name := range m.summary.NonEmpty() {
		count := m.summary.Counts[name]
		percent := float64(count) / float64(m.summary.Total)
		b.WriteString(fmt.Sprintf("  %-10s %s %4d\n", name, m.bar.ViewAs(percent), count))
	}
	b.WriteString(fmt.Sprintf("\n  共 %d 个文件，%s", m.summary.Total, humanize.Bytes(uint64(m.summary.Bytes))))
	return b.String()
}

func (m *model) confirmView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("↩️  恢复上次整理") + "\n\n")
	b.WriteString(filePathStyle.Render(m.restoreDir) + "\n\n")
	b.WriteString(labelStyle.Render("把所有文件放回原处？") + "\n")
	b.WriteString(hintStyle.Render("y 确认，n 取消") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) doneView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorTitleStyle.Render("❌ 出错了") + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ 完成") + "\n\n")
	}
	b.WriteString(statsBoxStyle.Render(m.renderResult()) + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 返回首页，q 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderResult() string {
	var b strings.Builder
	b.WriteString(m.message + "\n")

	if m.outcome != nil && m.outcome.Result != nil {
		r := m.outcome.Result
		b.WriteString(fmt.Sprintf("\n  • 已移动：   %d 个\n", r.Moved))
		b.WriteString(fmt.Sprintf("  • 已跳过：   %d 个\n", r.Skipped))
		b.WriteString(fmt.Sprintf("  • 移动失败： %d 个\n", r.Failed))
		b.WriteString(fmt.Sprintf("  • 耗时：     %s\n", r.EndTime.Sub(r.StartTime)))
		b.WriteString("\n" + filePathStyle.Render(r.Destination))
	}
	if m.restored != nil {
		r := m.restored
		b.WriteString(fmt.Sprintf("\n  • 已恢复：   %d 个\n", r.Restored))
		b.WriteString(fmt.Sprintf("  • 已跳过：   %d 个\n", r.Skipped))
		b.WriteString(fmt.Sprintf("  • 恢复失败： %d 个\n", r.Failed))
	}
	return b.String()
}
