package internal

const (
	// 整理目标目录名，总是源目录的直接子目录
	DestFolderName = "TidyDesk"

	// 移动记录文件名，位于整理目标目录内
	RecordFileName = "_restore.json"

	// 未命中任何分类时使用的保留分类
	OthersCategory = "Others"

	// 状态文件默认路径（上次整理的目录）
	DefaultStatePath = "~/.tidydesk_state.json"

	// 历史数据库默认路径
	DefaultHistoryPath = "~/.tidydesk/history.db"

	// 内容探测读取的文件头大小
	FileHeaderSize = 261
)

// 隐藏文件前缀
const HiddenPrefix = "."

// 快捷方式扩展名，永远不会被移动
var ShortcutExtensions = []string{".lnk"}
