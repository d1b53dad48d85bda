package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidharthgehlot/TidyDesk/app"
)

var cleanDryRun bool

// cleanCmd 预览并整理目录
var cleanCmd = &cobra.Command{
	Use:   "clean [desktop|downloads|路径]",
	Short: "把目录中的文件按分类移动到 TidyDesk 子目录",
	Long: `先预览，再把符合条件的文件移动到 <目录>/TidyDesk/<分类>/。
目标位置已有同名文件时跳过，不覆盖。移动记录保存在 TidyDesk/_restore.json，
可以用 restore 命令恢复。

示例:
  tidydesk clean downloads
  tidydesk clean ~/Desktop --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		source, err := app.ResolveSource(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cleanDryRun {
			summary, err := a.Scan(source)
			if err != nil {
				return err
			}
			if summary.Total == 0 {
				fmt.Fprintln(out, "这个文件夹本来就很整洁")
				return nil
			}
			fmt.Fprintln(out, renderSummary(summary))
			return nil
		}

		outcome, err := a.Clean(source)
		if err != nil {
			return err
		}

		if !outcome.AlreadyClean() {
			fmt.Fprintln(out, renderSummary(outcome.Summary))
			fmt.Fprintln(out, renderCleanup(outcome.Result))
		}
		fmt.Fprintln(out, outcome.Message())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "只预览，不移动文件")
}
