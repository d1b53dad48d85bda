package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sidharthgehlot/TidyDesk/app"
)

var (
	cfgFile string // 配置文件路径
	verbose bool   // 调试日志
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tidydesk",
	Short: "一键按类型整理文件夹，什么都不删除",
	Long: `TidyDesk 把一个文件夹里散落的文件按扩展名移动到 TidyDesk/<分类>/ 子目录中，
并记录每一次移动，之后可以一次性恢复原样。

主要功能:
- 预览将要整理的文件（按分类统计）
- 移动文件，目标已存在时跳过，不覆盖
- 记录移动，支持恢复上次整理
- 不递归子目录，不移动隐藏文件、快捷方式和程序自身`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newApp 根据全局参数创建应用，日志写到 logOut，为 nil 时写到标准错误
func newApp(logOut io.Writer) (*app.App, error) {
	return app.New(&app.Options{
		ConfigFile: cfgFile,
		Verbose:    verbose,
		LogWriter:  logOut,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认 $HOME/.tidydesk/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")
}
