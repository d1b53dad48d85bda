package scanner

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/classifier"
	"github.com/sidharthgehlot/TidyDesk/pkg/logger"
)

// Entry 源目录中一个可移动的文件
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	Size     int64  `json:"size" yaml:"size"`
	Category string `json:"category" yaml:"category"`
	MIME     string `json:"mime,omitempty" yaml:"mime,omitempty"`
}

// Summary 扫描结果，Counts 总是包含全部分类（含 Others）
type Summary struct {
	Source  string         `json:"source" yaml:"source"`
	Order   []string       `json:"order" yaml:"order"`
	Counts  map[string]int `json:"counts" yaml:"counts"`
	Total   int            `json:"total" yaml:"total"`
	Bytes   int64          `json:"bytes" yaml:"bytes"`
	Entries []Entry        `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// NonEmpty 按分类表顺序返回数量大于 0 的分类
func (s *Summary) NonEmpty() []string {
	var names []string
	for _, name := range s.Order {
		if s.Counts[name] > 0 {
			names = append(names, name)
		}
	}
	return names
}

// Scanner 非递归扫描源目录，只读
type Scanner struct {
	fs     afero.Fs
	table  *classifier.Table
	filter *Filter

	// Sniff 为 true 时对归入 Others 的文件做内容探测
	Sniff bool
}

func NewScanner(fs afero.Fs, table *classifier.Table, filter *Filter) *Scanner {
	return &Scanner{
		fs:     fs,
		table:  table,
		filter: filter,
	}
}

// List 列出 dir 的直接子项中可移动的文件
// 每次调用都会重新读取目录
func (s *Scanner) List(dir string) ([]Entry, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrDirectoryAccess, dir, err)
	}

	info, err := s.fs.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrDirectoryAccess, absDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: 不是目录", internal.ErrDirectoryAccess, absDir)
	}

	children, err := afero.ReadDir(s.fs, absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrDirectoryAccess, absDir, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		if !s.filter.IsEligible(s.fs, absDir, child) {
			logger.Get().Trace().Msgf("跳过不可移动的条目: %s", child.Name())
			continue
		}
		entries = append(entries, Entry{
			Name:     child.Name(),
			Path:     filepath.Join(absDir, child.Name()),
			Size:     child.Size(),
			Category: s.table.Classify(child.Name()),
		})
	}

	return entries, nil
}

// Scan 统计 dir 中每个分类的可移动文件数量，不修改文件系统
func (s *Scanner) Scan(dir string) (*Summary, error) {
	entries, err := s.List(dir)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("扫描目录失败: %s", dir)
		return nil, err
	}

	absDir, _ := filepath.Abs(dir)
	summary := &Summary{
		Source: absDir,
		Order:  s.table.Names(),
		Counts: make(map[string]int),
	}
	for _, name := range summary.Order {
		summary.Counts[name] = 0
	}

	for i := range entries {
		e := &entries[i]
		summary.Counts[e.Category]++
		summary.Total++
		summary.Bytes += e.Size

		if s.Sniff && e.Category == internal.OthersCategory {
			e.MIME = s.sniff(e.Path)
		}
	}
	summary.Entries = entries

	logger.Get().Info().Msgf("扫描完成: %s，可整理文件 %d 个", absDir, summary.Total)
	return summary, nil
}

// sniff 通过文件头探测 MIME 类型，无法识别时返回空串
func (s *Scanner) sniff(path string) string {
	file, err := s.fs.Open(path)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("打开文件失败: %s", path)
		return ""
	}
	defer file.Close()

	head := make([]byte, internal.FileHeaderSize)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		logger.Get().Debug().Err(err).Msgf("读取文件头部失败: %s", path)
		return ""
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
