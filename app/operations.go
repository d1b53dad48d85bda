package app

import (
	"errors"
	"fmt"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/history"
	"github.com/sidharthgehlot/TidyDesk/pkg/journal"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
	"github.com/sidharthgehlot/TidyDesk/pkg/scanner"
)

// CleanOutcome 一次“预览 + 整理”的结果
type CleanOutcome struct {
	Summary *scanner.Summary
	Result  *internal.CleanupResult // 预览为空时为 nil
}

// AlreadyClean 以整理前的预览判断目录是否本来就是整洁的
func (o *CleanOutcome) AlreadyClean() bool {
	return o.Summary.Total == 0
}

// Message 返回给用户看的结果说明
func (o *CleanOutcome) Message() string {
	if o.AlreadyClean() {
		return "这个文件夹本来就很整洁"
	}
	if o.Result == nil || o.Result.Moved == 0 {
		return "没有文件被移动（目标位置已有同名文件或移动失败）"
	}
	return fmt.Sprintf("全部完成，%d 个文件已放入 ‘%s’", o.Result.Moved, internal.DestFolderName)
}

// Scan 预览源目录，不修改文件系统
func (a *App) Scan(source string) (*scanner.Summary, error) {
	return a.Organizer.Scanner().Scan(source)
}

// Clean 先预览再整理；预览为空时不创建任何目录
func (a *App) Clean(source string) (*CleanOutcome, error) {
	summary, err := a.Scan(source)
	if err != nil {
		a.recordCleanup(source, nil, err)
		return nil, err
	}

	outcome := &CleanOutcome{Summary: summary}
	if outcome.AlreadyClean() {
		logger.Get().Info().Msgf("目录已经很整洁: %s", summary.Source)
		return outcome, nil
	}

	result, err := a.Organizer.Cleanup(summary.Source)
	a.recordCleanup(summary.Source, result, err)
	outcome.Result = result
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}

// Restore 按移动记录恢复 destDir；destDir 为空时使用上次整理的目录
func (a *App) Restore(destDir string) (*internal.RestoreResult, error) {
	if destDir == "" {
		last, err := a.State.Load()
		if err != nil {
			logger.Get().Warn().Err(err).Msg("读取状态文件失败")
		}
		if last == "" {
			return nil, fmt.Errorf("%w: 没有上次整理的记录", internal.ErrRecordNotFound)
		}
		destDir = last
	}

	result, err := a.Organizer.Restore(destDir)
	a.recordRestore(destDir, result, err)
	return result, err
}

// RestoreMessage 返回恢复结果的说明
func RestoreMessage(result *internal.RestoreResult, err error) string {
	switch {
	case errors.Is(err, internal.ErrRecordNotFound):
		return "找不到恢复信息（可能已经恢复过，或从未整理）"
	case errors.Is(err, internal.ErrRecordParse):
		return fmt.Sprintf("无法恢复：移动记录已损坏: %v", err)
	case err != nil:
		return fmt.Sprintf("无法恢复: %v", err)
	case result.RecordKept:
		return fmt.Sprintf("移动记录中的文件都不在 %s 内，记录已保留", result.Destination)
	case result.Skipped > 0 || result.Failed > 0:
		return fmt.Sprintf("已恢复 %d 个文件，跳过 %d 个，失败 %d 个", result.Restored, result.Skipped, result.Failed)
	default:
		return "一切都恢复原样了"
	}
}

// LastCleaned 返回可恢复的上次整理目录
// 目录存在且其中仍有移动记录时 ok 为 true
func (a *App) LastCleaned() (string, bool) {
	dir, ok := a.State.RestoreAvailable()
	if !ok {
		return dir, false
	}
	return dir, journal.Exists(a.Fs, dir)
}

// Recent 返回最近的运行历史
func (a *App) Recent(limit int) ([]history.Run, error) {
	if a.History == nil {
		return nil, fmt.Errorf("历史记录未启用")
	}
	return a.History.Recent(limit)
}

// HistoryFor 返回某个整理目录的全部运行记录，dir 可以是源目录或快捷名
func (a *App) HistoryFor(dir string) ([]history.Run, error) {
	if a.History == nil {
		return nil, fmt.Errorf("历史记录未启用")
	}
	dest, err := ResolveDestination(dir)
	if err != nil {
		return nil, err
	}
	return a.History.ForDestination(dest)
}

func (a *App) recordCleanup(source string, result *internal.CleanupResult, err error) {
	if a.History == nil {
		return
	}
	if _, herr := a.History.RecordCleanup(source, result, err); herr != nil {
		logger.Get().Warn().Err(herr).Msg("记录整理历史失败")
	}
}

func (a *App) recordRestore(dest string, result *internal.RestoreResult, err error) {
	if a.History == nil {
		return
	}
	if _, herr := a.History.RecordRestore(dest, result, err); herr != nil {
		logger.Get().Warn().Err(herr).Msg("记录恢复历史失败")
	}
}
