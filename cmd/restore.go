package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sidharthgehlot/TidyDesk/app"
	"github.com/sidharthgehlot/TidyDesk/internal"
)

var restoreYes bool

// restoreCmd 按移动记录把文件放回原处
var restoreCmd = &cobra.Command{
	Use:   "restore [desktop|downloads|目录]",
	Short: "恢复上次整理",
	Long: `读取 TidyDesk/_restore.json，把文件移回原来的位置。
原位置已有文件或整理后的文件已被删除时跳过该文件。
可以指定 TidyDesk 目录，也可以指定被整理的目录或快捷名。
不指定目录时恢复上次整理的目录。

示例:
  tidydesk restore
  tidydesk restore desktop
  tidydesk restore ~/Downloads/TidyDesk --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()

		var dest string
		if len(args) == 1 {
			resolved, err := app.ResolveDestination(args[0])
			if err != nil {
				return err
			}
			dest = resolved
		} else if last, ok := a.LastCleaned(); ok {
			dest = last
		}

		if dest != "" && !restoreYes {
			fmt.Fprintf(out, "目录: %s\n", dest)
			if !confirm(cmd.InOrStdin(), out, "把所有文件放回原处？") {
				fmt.Fprintln(out, "已取消")
				return nil
			}
		}

		result, err := a.Restore(dest)
		fmt.Fprintln(out, app.RestoreMessage(result, err))
		if err != nil && !errors.Is(err, internal.ErrRecordNotFound) {
			return err
		}
		return nil
	},
}

// confirm 读取一行回答，y 或 yes 视为同意
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "不询问，直接恢复")
}
