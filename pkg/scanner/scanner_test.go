package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/classifier"
)

func writeFiles(t *testing.T, fs afero.Fs, dir string, files map[string]string) {
	t.Helper()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}
}

func TestScanner_Scan(t *testing.T) {
	fs := afero.NewMemMapFs()
	source := "/home/user/Desktop"

	writeFiles(t, fs, source, map[string]string{
		"report.pdf": "%PDF-1.4",
		"photo.JPG":  "\xff\xd8\xff\xe0",
		"notes":      "plain",
		".env":       "SECRET=1",
	})

	s := NewScanner(fs, classifier.Default(), NewFilter(""))
	summary, err := s.Scan(source)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	expected := map[string]int{
		"PDFs": 1, "Documents": 0, "Excel": 0, "Presentations": 0,
		"Images": 1, "Videos": 0, "Installers": 0, "Others": 1,
	}
	if len(summary.Counts) != len(expected) {
		t.Errorf("Expected %d categories, got %d", len(expected), len(summary.Counts))
	}
	for name, count := range expected {
		got, ok := summary.Counts[name]
		if !ok {
			t.Errorf("category %s missing from counts", name)
			continue
		}
		if got != count {
			t.Errorf("Counts[%s] = %d, want %d", name, got, count)
		}
	}

	if summary.Total != 3 {
		t.Errorf("Expected total 3, got %d", summary.Total)
	}
	if summary.Bytes != int64(len("%PDF-1.4")+len("\xff\xd8\xff\xe0")+len("plain")) {
		t.Errorf("unexpected byte total %d", summary.Bytes)
	}

	nonEmpty := summary.NonEmpty()
	if len(nonEmpty) != 3 || nonEmpty[0] != "PDFs" || nonEmpty[1] != "Images" || nonEmpty[2] != "Others" {
		t.Errorf("NonEmpty() = %v", nonEmpty)
	}
}

func TestScanner_Scan_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/empty", 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	summary, err := NewScanner(fs, classifier.Default(), NewFilter("")).Scan("/empty")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("Expected total 0, got %d", summary.Total)
	}
	if len(summary.Counts) != len(classifier.Default().Names()) {
		t.Errorf("counts should contain every category, got %v", summary.Counts)
	}
}

func TestScanner_Scan_NonExistentDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewScanner(fs, classifier.Default(), NewFilter("")).Scan("/non/existent")

	if !errors.Is(err, internal.ErrDirectoryAccess) {
		t.Errorf("Expected ErrDirectoryAccess, got %v", err)
	}
}

func TestScanner_Scan_NotADirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/src", map[string]string{"file.txt": "x"})

	_, err := NewScanner(fs, classifier.Default(), NewFilter("")).Scan("/src/file.txt")
	if !errors.Is(err, internal.ErrDirectoryAccess) {
		t.Errorf("Expected ErrDirectoryAccess, got %v", err)
	}
}

func TestScanner_List_ExcludesIneligible(t *testing.T) {
	fs := afero.NewMemMapFs()
	source := "/src"

	writeFiles(t, fs, source, map[string]string{
		"keep.txt":      "a",
		"shortcut.lnk":  "b",
		"Shortcut2.LNK": "c",
		".hidden.pdf":   "d",
	})
	if err := fs.MkdirAll(filepath.Join(source, "subdir"), 0755); err != nil {
		t.Fatalf("创建子目录失败: %v", err)
	}
	if err := fs.MkdirAll(filepath.Join(source, internal.DestFolderName), 0755); err != nil {
		t.Fatalf("创建目标目录失败: %v", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(source, "subdir", "nested.pdf"), []byte("x"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	entries, err := NewScanner(fs, classifier.Default(), NewFilter("")).List(source)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 eligible entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "keep.txt" || entries[0].Category != "Documents" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
	if entries[0].Path != filepath.Join(source, "keep.txt") {
		t.Errorf("Expected absolute path, got %s", entries[0].Path)
	}
}

func TestFilter_DestinationNamedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/src", map[string]string{internal.DestFolderName: "not a folder"})

	info, err := fs.Stat(filepath.Join("/src", internal.DestFolderName))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if NewFilter("").IsEligible(fs, "/src", info) {
		t.Error("a file named like the destination folder must not be eligible")
	}
}

func TestFilter_SelfPath(t *testing.T) {
	tempDir := t.TempDir()
	self := filepath.Join(tempDir, "tidydesk")
	other := filepath.Join(tempDir, "other.exe")

	for _, p := range []string{self, other} {
		if err := os.WriteFile(p, []byte("bin"), 0755); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	fs := afero.NewOsFs()
	filter := NewFilter(self)

	selfInfo, _ := os.Stat(self)
	otherInfo, _ := os.Stat(other)

	if filter.IsEligible(fs, tempDir, selfInfo) {
		t.Error("the running program must not be eligible")
	}
	if !filter.IsEligible(fs, tempDir, otherInfo) {
		t.Error("other executables should be eligible")
	}
}

func TestFilter_SymlinkToDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping symlink test in short mode")
	}

	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "real")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	link := filepath.Join(tempDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat() error = %v", err)
	}

	if NewFilter("").IsEligible(afero.NewOsFs(), tempDir, info) {
		t.Error("a symlink to a directory must not be eligible")
	}
}

func TestScanner_Sniff(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/src", map[string]string{
		"picture":   "\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR",
		"plain":     "just some text",
		"known.pdf": "%PDF-1.4",
	})

	s := NewScanner(fs, classifier.Default(), NewFilter(""))
	s.Sniff = true

	summary, err := s.Scan("/src")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	mimes := make(map[string]string)
	for _, e := range summary.Entries {
		mimes[e.Name] = e.MIME
	}

	if mimes["picture"] != "image/png" {
		t.Errorf("Expected image/png for picture, got %q", mimes["picture"])
	}
	if mimes["plain"] != "" {
		t.Errorf("Expected no MIME for plain text, got %q", mimes["plain"])
	}
	if mimes["known.pdf"] != "" {
		t.Errorf("classified files should not be sniffed, got %q", mimes["known.pdf"])
	}
	if summary.Counts["Others"] != 2 {
		t.Errorf("sniffing must not change classification, Others = %d", summary.Counts["Others"])
	}
}
