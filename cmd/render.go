package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/history"
	"github.com/sidharthgehlot/TidyDesk/pkg/scanner"
)

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderSummary 渲染预览：每个非空分类一行
func renderSummary(s *scanner.Summary) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"分类", "文件数", "去向"})
	for _, name := range s.NonEmpty() {
		tw.AppendRow(table.Row{name, s.Counts[name], internal.DestFolderName + "/" + name})
	}
	tw.AppendFooter(table.Row{"合计", s.Total, humanize.Bytes(uint64(s.Bytes))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

// renderEntries 渲染每个文件的去向，包含内容探测结果
func renderEntries(s *scanner.Summary) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"文件", "分类", "大小", "探测类型"})
	for _, e := range s.Entries {
		tw.AppendRow(table.Row{e.Name, e.Category, humanize.Bytes(uint64(e.Size)), e.MIME})
	}
	return tw.Render()
}

func renderHistory(runs []history.Run) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"时间", "类型", "状态", "目录", "移动", "恢复", "跳过", "失败"})
	for _, r := range runs {
		dir := r.Destination
		if dir == "" {
			dir = r.Source
		}
		tw.AppendRow(table.Row{
			humanize.Time(r.FinishedAt),
			r.Kind,
			r.Status,
			dir,
			strconv.Itoa(r.Moved),
			strconv.Itoa(r.Restored),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(r.Failed),
		})
	}
	return tw.Render()
}

func renderCleanup(r *internal.CleanupResult) string {
	return fmt.Sprintf("已移动 %d 个文件，跳过 %d 个（目标已存在），失败 %d 个\n目标目录: %s",
		r.Moved, r.Skipped, r.Failed, r.Destination)
}
