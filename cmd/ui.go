package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sidharthgehlot/TidyDesk/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "启动交互式界面",
	Long: `启动终端交互界面：选择桌面、下载或自定义目录，预览后一键整理，
也可以恢复上次整理。界面运行期间日志只写入配置的日志文件。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(io.Discard)
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(a)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
