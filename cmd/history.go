package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidharthgehlot/TidyDesk/pkg/history"
)

var (
	historyLimit int
	historyDir   string
)

// historyCmd 列出最近的整理和恢复
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看最近的整理和恢复记录",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		var runs []history.Run
		if historyDir != "" {
			runs, err = a.HistoryFor(historyDir)
		} else {
			runs, err = a.Recent(historyLimit)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "还没有记录")
			return nil
		}
		fmt.Fprintln(out, renderHistory(runs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "显示的条数，0 表示全部")
	historyCmd.Flags().StringVarP(&historyDir, "dir", "d", "", "只显示某个目录的全部记录（目录或 desktop/downloads）")
}
