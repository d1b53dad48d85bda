package internal

import "time"

// 运行类型
type RunKind string

const (
	RunCleanup RunKind = "cleanup"
	RunRestore RunKind = "restore"
)

// 移动记录中的一条
type MoveEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// 整理结果
type CleanupResult struct {
	Source      string
	Destination string
	Moved       int
	Skipped     int // 目标已存在
	Failed      int // 移动失败
	RecordPath  string
	Entries     []MoveEntry
	StartTime   time.Time
	EndTime     time.Time
}

// AlreadyClean 本次没有移动任何文件
func (r *CleanupResult) AlreadyClean() bool {
	return r.Moved == 0
}

// 恢复结果
type RestoreResult struct {
	Destination        string
	Restored           int
	Skipped            int // 源位置已被占用或目标已不存在
	Failed             int
	Outside            int // 记录中的路径不在整理目录内
	RecordKept         bool
	RemovedDirs        []string
	DestinationRemoved bool
	StartTime          time.Time
	EndTime            time.Time
}
