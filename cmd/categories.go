package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

// categoriesCmd 显示当前生效的分类表
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "显示分类和对应的扩展名",
	Long: `按匹配顺序列出分类表。同一扩展名出现在多个分类中时以先出现的为准，
未命中任何分类的文件归入 Others。分类表可在配置文件的 categories 中修改。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		tw := newTable()
		tw.AppendHeader(table.Row{"分类", "扩展名"})
		for _, c := range a.Table.Categories() {
			tw.AppendRow(table.Row{c.Name, strings.Join(c.Extensions, " ")})
		}
		tw.AppendRow(table.Row{internal.OthersCategory, "其它"})
		fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
