package organizer

import (
	"fmt"
	"io"
	"os"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// moveFile 使用 rename 操作将文件从源路径移动到目标路径
// rename 失败且源文件仍在时（可能是跨卷移动），改为复制后删除
func (o *Organizer) moveFile(src, dst string) error {
	renameErr := o.Fs.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	info, err := o.Fs.Stat(src)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s: %v", internal.ErrMoveFailed, src, renameErr)
	}

	logger.Get().Debug().
		Err(renameErr).
		Str("source", src).
		Str("destination", dst).
		Msg("直接重命名失败，尝试复制后删除")

	if err := o.copyFile(src, dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %s: %v", internal.ErrMoveFailed, src, err)
	}

	if err := o.Fs.Remove(src); err != nil {
		// 原文件删不掉时撤销复制，保持只有一份
		_ = o.Fs.Remove(dst)
		return fmt.Errorf("%w: 删除原文件失败: %s: %v", internal.ErrMoveFailed, src, err)
	}

	return nil
}

// copyFile 复制文件内容，目标已存在时失败；失败时删除已创建的目标文件
func (o *Organizer) copyFile(src, dst string, perm os.FileMode) error {
	sourceFile, err := o.Fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.Fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		_ = o.Fs.Remove(dst)
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := destFile.Close(); err != nil {
		_ = o.Fs.Remove(dst)
		return fmt.Errorf("关闭目标文件失败: %w", err)
	}
	return nil
}
