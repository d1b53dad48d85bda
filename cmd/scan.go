package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sidharthgehlot/TidyDesk/app"
)

var (
	scanOutput string
	scanSniff  bool
	scanFiles  bool
)

// scanCmd 预览一个目录，不移动任何文件
var scanCmd = &cobra.Command{
	Use:   "scan [desktop|downloads|路径]",
	Short: "预览目录中各分类的文件数",
	Long: `扫描目录的第一层（不递归），按扩展名统计每个分类将被移动的文件数。
不修改任何文件。

示例:
  tidydesk scan desktop
  tidydesk scan ~/Downloads --output yaml
  tidydesk scan . --sniff --files`,
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
		if cmd.Flags().Changed("sniff") {
			a.Organizer.Scanner().Sniff = scanSniff
		}

		summary, err := a.Scan(source)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch scanOutput {
		case "json":
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(summary); err != nil {
				return err
			}
			return enc.Close()
		case "table", "":
			if summary.Total == 0 {
				fmt.Fprintln(out, "这个文件夹本来就很整洁")
				return nil
			}
			fmt.Fprintf(out, "目录: %s\n", summary.Source)
			fmt.Fprintln(out, renderSummary(summary))
			if scanFiles {
				fmt.Fprintln(out, renderEntries(summary))
			}
		default:
			return fmt.Errorf("不支持的输出格式: %s", scanOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "table", "输出格式: table, json, yaml")
	scanCmd.Flags().BoolVar(&scanSniff, "sniff", false, "对无法按扩展名分类的文件探测内容类型")
	scanCmd.Flags().BoolVar(&scanFiles, "files", false, "列出每个文件")
}
