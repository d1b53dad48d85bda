package classifier

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

// Category 一个分类及其扩展名集合（小写，带前导点）
type Category struct {
	Name       string
	Extensions []string
}

// Table 有序的分类表，初始化后不再修改
// 一个扩展名同时属于多个分类时，取表中第一个匹配的分类
type Table struct {
	categories []Category
	lookup     map[string]string
}

// DefaultCategories 内置分类表
var DefaultCategories = []Category{
	{Name: "PDFs", Extensions: []string{".pdf"}},
	{Name: "Documents", Extensions: []string{".doc", ".docx", ".txt", ".rtf"}},
	{Name: "Excel", Extensions: []string{".xls", ".xlsx", ".csv"}},
	{Name: "Presentations", Extensions: []string{".ppt", ".pptx"}},
	{Name: "Images", Extensions: []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif"}},
	{Name: "Videos", Extensions: []string{".mp4", ".mov", ".mkv", ".avi"}},
	{Name: "Installers", Extensions: []string{".zip", ".rar", ".7z", ".exe", ".msi"}},
}

// Default 返回使用内置分类的表
func Default() *Table {
	t, err := NewTable(DefaultCategories)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable 根据有序分类列表创建分类表
// 扩展名统一转为小写并补齐前导点；Others 为保留分类名
func NewTable(categories []Category) (*Table, error) {
	t := &Table{
		categories: make([]Category, 0, len(categories)),
		lookup:     make(map[string]string),
	}

	seen := make(map[string]bool)
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("分类名不能为空")
		}
		if strings.EqualFold(name, internal.OthersCategory) {
			return nil, fmt.Errorf("分类名 %q 为保留名称", name)
		}
		if name == internal.DestFolderName || strings.ContainsAny(name, `/\`) {
			return nil, fmt.Errorf("无效的分类名: %q", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("重复的分类名: %q", name)
		}
		seen[name] = true

		exts := make([]string, 0, len(c.Extensions))
		for _, e := range c.Extensions {
			ext := NormalizeExtension(e)
			if ext == "" {
				continue
			}
			exts = append(exts, ext)
			// 先出现的分类优先
			if _, ok := t.lookup[ext]; !ok {
				t.lookup[ext] = name
			}
		}
		t.categories = append(t.categories, Category{Name: name, Extensions: exts})
	}

	return t, nil
}

// NormalizeExtension 将 "PDF"、".Pdf" 等写法统一为 ".pdf"
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Ext 返回文件名最后一个点之后的扩展名（含点，小写）
// 没有扩展名时返回空串；".env" 这类仅以点开头的名字没有扩展名
func Ext(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	ext := filepath.Ext(base)
	if ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

// Classify 返回文件名所属的分类，未命中时返回 Others
func (t *Table) Classify(name string) string {
	if category, ok := t.lookup[Ext(name)]; ok {
		return category
	}
	return internal.OthersCategory
}

// Names 返回表中所有分类名（按表顺序），最后追加 Others
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories)+1)
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return append(names, internal.OthersCategory)
}

// Categories 返回分类列表的副本
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}
	}
	return out
}
