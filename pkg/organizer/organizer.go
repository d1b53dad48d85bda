package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/classifier"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
	"github.com/sidharthgehlot/TidyDesk/pkg/scanner"
)

// Pointer 保存“上次整理的目录”，失败只影响恢复按钮的显示
type Pointer interface {
	Save(destDir string) error
	Clear() error
}

// Organizer 负责整理（移动并记录）和恢复
// 同一时间只应执行一个操作
type Organizer struct {
	Fs      afero.Fs
	table   *classifier.Table
	scanner *scanner.Scanner
	pointer Pointer
}

// New 创建 Organizer，pointer 可以为 nil
func New(fs afero.Fs, table *classifier.Table, filter *scanner.Filter, pointer Pointer) *Organizer {
	return &Organizer{
		Fs:      fs,
		table:   table,
		scanner: scanner.NewScanner(fs, table, filter),
		pointer: pointer,
	}
}

// Scanner 返回与 Organizer 共用文件系统和分类表的扫描器
func (o *Organizer) Scanner() *scanner.Scanner {
	return o.scanner
}

// DestinationFor 返回源目录对应的整理目标目录
func DestinationFor(sourceDir string) (string, error) {
	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, internal.DestFolderName), nil
}

// ensureDir 创建单层目录，已存在时要求是目录
func (o *Organizer) ensureDir(path string) error {
	if err := o.Fs.Mkdir(path, 0755); err != nil && !os.IsExist(err) {
		return err
	}
	info, err := o.Fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s 已存在但不是目录", path)
	}
	return nil
}

// exists 检查路径是否存在，无法判断时返回错误
func (o *Organizer) exists(path string) (bool, error) {
	_, err := o.Fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (o *Organizer) savePointer(destDir string) {
	if o.pointer == nil {
		return
	}
	if err := o.pointer.Save(destDir); err != nil {
		logger.Get().Warn().Err(err).Msg("保存上次整理目录失败，恢复入口将不可用")
	}
}

func (o *Organizer) clearPointer() {
	if o.pointer == nil {
		return
	}
	if err := o.pointer.Clear(); err != nil {
		logger.Get().Warn().Err(err).Msg("清除上次整理目录失败")
	}
}

// realPath 解析路径父目录中的符号链接，用于比较同一目录的不同写法
// 只对真实文件系统生效；解析失败时返回清理后的原路径
func (o *Organizer) realPath(path string) string {
	clean := filepath.Clean(path)
	if _, ok := o.Fs.(*afero.OsFs); !ok {
		return clean
	}
	parent, err := filepath.EvalSymlinks(filepath.Dir(clean))
	if err != nil {
		return clean
	}
	return filepath.Join(parent, filepath.Base(clean))
}
