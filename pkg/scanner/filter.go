package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/classifier"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// Filter 判断源目录中的条目是否允许移动
type Filter struct {
	// SelfPath 当前程序文件解析后的绝对路径，为空表示未知
	SelfPath string
}

// NewFilter 创建过滤器，selfPath 为空时不做自身路径检查
func NewFilter(selfPath string) *Filter {
	return &Filter{SelfPath: resolvePath(selfPath)}
}

// ExecutablePath 返回当前程序文件的路径，获取失败时返回空串
func ExecutablePath() string {
	exe, err := os.Executable()
	if err != nil {
		logger.Get().Debug().Err(err).Msg("无法获取程序路径，跳过自身检查")
		return ""
	}
	return exe
}

// IsEligible 判断 dir 下的条目 info 是否可以移动
// 以下情况不可移动：目录、快捷方式、隐藏文件、整理目标目录本身、程序自身
func (f *Filter) IsEligible(fs afero.Fs, dir string, info os.FileInfo) bool {
	name := info.Name()

	if isDir(fs, filepath.Join(dir, name), info) {
		return false
	}

	ext := classifier.Ext(name)
	for _, shortcut := range internal.ShortcutExtensions {
		if ext == shortcut {
			return false
		}
	}

	if strings.HasPrefix(name, internal.HiddenPrefix) {
		return false
	}

	if name == internal.DestFolderName {
		return false
	}

	// 路径解析失败视为“不是自身”，不阻止移动
	if f.SelfPath != "" {
		if resolved := resolvePath(filepath.Join(dir, name)); resolved != "" && resolved == f.SelfPath {
			return false
		}
	}

	return true
}

// isDir 对符号链接按其指向的目标判断
func isDir(fs afero.Fs, path string, info os.FileInfo) bool {
	if info.IsDir() {
		return true
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return target.IsDir()
}

func resolvePath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
