package internal

import "errors"

var (
	// 无法列出或读取目录，操作在任何修改之前终止
	ErrDirectoryAccess = errors.New("directory not accessible")

	// 单个文件移动失败，只记录并跳过
	ErrMoveFailed = errors.New("move failed")

	// 没有可用的移动记录
	ErrRecordNotFound = errors.New("restore record not found")

	// 移动记录格式损坏
	ErrRecordParse = errors.New("restore record is corrupt")

	// 状态文件不可读写，只影响“恢复上次整理”的便利功能
	ErrStatePersistence = errors.New("state unavailable")
)
