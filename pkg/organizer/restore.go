package organizer

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/journal"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// Restore 按移动记录把文件放回原处
// 只有当 to 存在且 from 不存在时才移动，其余情况跳过：
// 不覆盖原位置重新出现的文件，也不凭空创建已被删除的文件。
// 之后删除空的分类目录和移动记录，整理目录为空时一并删除。
// 记录被删除后再次调用会返回 ErrRecordNotFound。
func (o *Organizer) Restore(destDir string) (*internal.RestoreResult, error) {
	result := &internal.RestoreResult{StartTime: time.Now()}

	dest, err := filepath.Abs(destDir)
	if err != nil {
		return nil, err
	}
	result.Destination = dest

	entries, err := journal.Read(o.Fs, dest)
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			// 已经恢复过或从未整理，入口不再有意义
			o.clearPointer()
		}
		logger.Get().Error().Err(err).Msgf("读取移动记录失败: %s", dest)
		return nil, err
	}

	logger.Get().Info().Msgf("开始恢复: %s，记录 %d 条", dest, len(entries))

	realDest := o.realPath(dest)
	for _, entry := range entries {
		o.restoreEntry(dest, realDest, entry, result)
	}

	// 没有一条记录属于这个目录时保留记录，换个路径仍可恢复
	if len(entries) > 0 && result.Outside == len(entries) {
		result.RecordKept = true
		result.EndTime = time.Now()
		logger.Get().Warn().Msgf("移动记录中的文件都不在 %s 内，保留移动记录", dest)
		return result, nil
	}

	for _, dir := range o.categoryDirs(dest, realDest, entries) {
		if o.removeIfEmpty(dir) {
			result.RemovedDirs = append(result.RemovedDirs, dir)
		}
	}

	if err := journal.Remove(o.Fs, dest); err != nil {
		logger.Get().Error().Err(err).Msg("删除移动记录失败")
		return result, err
	}

	result.DestinationRemoved = o.removeIfEmpty(dest)
	o.clearPointer()
	result.EndTime = time.Now()

	logger.Get().Info().
		Int("restored", result.Restored).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Bool("destination_removed", result.DestinationRemoved).
		Msg("恢复完成")

	return result, nil
}

func (o *Organizer) restoreEntry(dest, realDest string, entry internal.MoveEntry, result *internal.RestoreResult) {
	if !within(dest, entry.To) && !within(realDest, o.realPath(entry.To)) {
		logger.Get().Warn().Msgf("记录中的路径不在整理目录内，跳过: %s", entry.To)
		result.Outside++
		result.Skipped++
		return
	}

	toExists, err := o.exists(entry.To)
	if err != nil {
		logger.Get().Warn().Err(err).Msgf("检查文件失败，跳过: %s", entry.To)
		result.Skipped++
		return
	}
	fromExists, err := o.exists(entry.From)
	if err != nil {
		logger.Get().Warn().Err(err).Msgf("检查原位置失败，跳过: %s", entry.From)
		result.Skipped++
		return
	}

	if !toExists || fromExists {
		logger.Get().Debug().
			Str("from", entry.From).
			Str("to", entry.To).
			Bool("to_exists", toExists).
			Bool("from_exists", fromExists).
			Msg("状态不匹配，跳过")
		result.Skipped++
		return
	}

	if err := o.moveFile(entry.To, entry.From); err != nil {
		logger.Get().Warn().Err(err).Msgf("恢复文件失败，跳过: %s", entry.To)
		result.Failed++
		return
	}

	result.Restored++
	logger.Get().Debug().Msgf("已恢复: %s -> %s", entry.To, entry.From)
}

// categoryDirs 返回可能由整理创建的分类目录：分类表中的全部分类，
// 以及记录里出现过的分类（分类表在整理后被修改时仍能清理）
func (o *Organizer) categoryDirs(dest, realDest string, entries []internal.MoveEntry) []string {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, name := range o.table.Names() {
		add(filepath.Join(dest, name))
	}
	for _, entry := range entries {
		parent := filepath.Dir(filepath.Clean(entry.To))
		if filepath.Dir(parent) == dest || filepath.Dir(o.realPath(parent)) == realDest {
			add(filepath.Join(dest, filepath.Base(parent)))
		}
	}

	return dirs
}

// removeIfEmpty 删除存在且为空的目录，返回是否删除
func (o *Organizer) removeIfEmpty(dir string) bool {
	info, err := o.Fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	empty, err := afero.IsEmpty(o.Fs, dir)
	if err != nil || !empty {
		return false
	}
	if err := o.Fs.Remove(dir); err != nil {
		logger.Get().Warn().Err(err).Msgf("删除空目录失败: %s", dir)
		return false
	}
	return true
}

// within 判断 path 是否位于 dir 之下
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
