// Package journal 读写移动记录文件，记录一次整理中每个成功移动的文件，
// 用于之后的恢复。文件内容为 [{"from": ..., "to": ...}, ...]，按移动顺序排列。
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

// Path 返回整理目标目录中的记录文件路径
func Path(destDir string) string {
	return filepath.Join(destDir, internal.RecordFileName)
}

// Exists 检查 destDir 中是否存在记录文件
func Exists(fs afero.Fs, destDir string) bool {
	info, err := fs.Stat(Path(destDir))
	return err == nil && !info.IsDir()
}

// Write 将记录写入 destDir，覆盖已有记录
// 先写临时文件再重命名，避免留下写了一半的记录
func Write(fs afero.Fs, destDir string, entries []internal.MoveEntry) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("编码移动记录失败: %w", err)
	}

	path := Path(destDir)
	tmp := path + ".tmp"

	if err := afero.WriteFile(fs, tmp, data, 0644); err != nil {
		return "", fmt.Errorf("写入移动记录失败: %w", err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return "", fmt.Errorf("保存移动记录失败: %w", err)
	}

	return path, nil
}

// Read 读取 destDir 中的记录
// 记录不存在返回 ErrRecordNotFound，格式错误返回 ErrRecordParse
func Read(fs afero.Fs, destDir string) ([]internal.MoveEntry, error) {
	path := Path(destDir)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", internal.ErrRecordNotFound, path)
		}
		return nil, fmt.Errorf("读取移动记录失败: %w", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrRecordParse, path, err)
	}

	entries := make([]internal.MoveEntry, 0, len(raw))
	for i, item := range raw {
		entry, err := decodeEntry(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: 第 %d 条: %v", internal.ErrRecordParse, path, i+1, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Remove 删除记录文件，不存在时不报错
func Remove(fs afero.Fs, destDir string) error {
	if err := fs.Remove(Path(destDir)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除移动记录失败: %w", err)
	}
	return nil
}

func decodeEntry(item map[string]json.RawMessage) (internal.MoveEntry, error) {
	var entry internal.MoveEntry

	fromRaw, ok := item["from"]
	if !ok {
		return entry, fmt.Errorf("缺少 from 字段")
	}
	toRaw, ok := item["to"]
	if !ok {
		return entry, fmt.Errorf("缺少 to 字段")
	}
	if err := json.Unmarshal(fromRaw, &entry.From); err != nil {
		return entry, fmt.Errorf("from 不是字符串: %w", err)
	}
	if err := json.Unmarshal(toRaw, &entry.To); err != nil {
		return entry, fmt.Errorf("to 不是字符串: %w", err)
	}
	if entry.From == "" || entry.To == "" {
		return entry, fmt.Errorf("路径为空")
	}

	return entry, nil
}
