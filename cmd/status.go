package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "显示是否有可以恢复的整理",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		if last, ok := a.LastCleaned(); ok {
			fmt.Fprintf(out, "上次整理: %s\n可以运行 tidydesk restore 恢复\n", last)
			return nil
		}
		fmt.Fprintln(out, "没有可以恢复的整理")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
