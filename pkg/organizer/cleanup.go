package organizer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/journal"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// Cleanup 将源目录中可移动的文件按分类移动到 <源目录>/TidyDesk/<分类>/
// 目标已存在时跳过；单个文件移动失败只记录日志并继续
// 至少移动了一个文件时写入移动记录（覆盖旧记录）并更新上次整理目录
func (o *Organizer) Cleanup(sourceDir string) (*internal.CleanupResult, error) {
	result := &internal.CleanupResult{StartTime: time.Now()}

	destination, err := DestinationFor(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrDirectoryAccess, sourceDir, err)
	}
	source := filepath.Dir(destination)
	result.Source = source
	result.Destination = destination

	info, err := o.Fs.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrDirectoryAccess, source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: 不是目录", internal.ErrDirectoryAccess, source)
	}

	if err := o.ensureDir(result.Destination); err != nil {
		logger.Get().Error().Err(err).Msg("创建整理目录失败")
		return nil, fmt.Errorf("%w: 创建整理目录: %v", internal.ErrDirectoryAccess, err)
	}

	// 重新读取目录，不复用预览时的扫描结果
	entries, err := o.scanner.List(source)
	if err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("开始整理: %s，可整理文件 %d 个", source, len(entries))

	for _, entry := range entries {
		categoryDir := filepath.Join(result.Destination, entry.Category)
		if err := o.ensureDir(categoryDir); err != nil {
			logger.Get().Warn().Err(err).Msgf("创建分类目录失败，跳过: %s", entry.Path)
			result.Failed++
			continue
		}

		target := filepath.Join(categoryDir, entry.Name)

		exists, err := o.exists(target)
		if err != nil {
			logger.Get().Warn().Err(err).Msgf("检查目标失败，跳过: %s", target)
			result.Failed++
			continue
		}
		if exists {
			logger.Get().Debug().Msgf("目标已存在，跳过: %s", target)
			result.Skipped++
			continue
		}

		if err := o.moveFile(entry.Path, target); err != nil {
			logger.Get().Warn().Err(err).Msgf("移动文件失败，跳过: %s", entry.Path)
			result.Failed++
			continue
		}

		result.Entries = append(result.Entries, internal.MoveEntry{From: entry.Path, To: target})
		result.Moved++
		logger.Get().Debug().Msgf("已移动: %s -> %s (%s)", entry.Path, target, entry.Category)
	}

	result.EndTime = time.Now()

	if len(result.Entries) == 0 {
		logger.Get().Info().Msg("没有移动任何文件，不写入移动记录")
		return result, nil
	}

	recordPath, err := journal.Write(o.Fs, result.Destination, result.Entries)
	if err != nil {
		// 文件已经移动，只是无法自动恢复
		logger.Get().Error().Err(err).Msg("写入移动记录失败")
		return result, err
	}
	result.RecordPath = recordPath

	o.savePointer(result.Destination)

	logger.Get().Info().
		Int("moved", result.Moved).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Str("destination", result.Destination).
		Msg("整理完成")

	return result, nil
}
