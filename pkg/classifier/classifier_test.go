package classifier

import (
	"reflect"
	"testing"

	"github.com/sidharthgehlot/TidyDesk/internal"
)

func TestTable_Classify(t *testing.T) {
	table := Default()

	testCases := []struct {
		filename string
		expected string
	}{
		{"report.pdf", "PDFs"},
		{"REPORT.PDF", "PDFs"},
		{"photo.JPG", "Images"},
		{"photo.jpeg", "Images"},
		{"notes.txt", "Documents"},
		{"budget.csv", "Excel"},
		{"slides.pptx", "Presentations"},
		{"clip.MKV", "Videos"},
		{"setup.msi", "Installers"},
		{"backup.tar.gz", internal.OthersCategory},
		{"notes", internal.OthersCategory},
		{"trailing.", internal.OthersCategory},
		{"song.mp3", internal.OthersCategory},
		{"/abs/path/to/image.png", "Images"},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			if got := table.Classify(tc.filename); got != tc.expected {
				t.Errorf("Classify(%q) = %q, want %q", tc.filename, got, tc.expected)
			}
		})
	}
}

func TestTable_Classify_FirstCategoryWins(t *testing.T) {
	table, err := NewTable([]Category{
		{Name: "Data", Extensions: []string{".csv"}},
		{Name: "Sheets", Extensions: []string{".CSV", ".xlsx"}},
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if got := table.Classify("a.csv"); got != "Data" {
		t.Errorf("Classify(a.csv) = %q, want Data", got)
	}
	if got := table.Classify("a.xlsx"); got != "Sheets" {
		t.Errorf("Classify(a.xlsx) = %q, want Sheets", got)
	}
}

func TestExt(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"a.PDF", ".pdf"},
		{"a.tar.gz", ".gz"},
		{"noext", ""},
		{".env", ""},
		{".config.yaml", ".yaml"},
		{"dot.", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Ext(tc.name); got != tc.expected {
				t.Errorf("Ext(%q) = %q, want %q", tc.name, got, tc.expected)
			}
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	testCases := map[string]string{
		"pdf":   ".pdf",
		".PDF":  ".pdf",
		" .Mp4": ".mp4",
		"":      "",
		".":     "",
	}

	for in, want := range testCases {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTable_Names(t *testing.T) {
	names := Default().Names()
	expected := []string{"PDFs", "Documents", "Excel", "Presentations", "Images", "Videos", "Installers", "Others"}

	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Names() = %v, want %v", names, expected)
	}
}

func TestNewTable_Invalid(t *testing.T) {
	testCases := []struct {
		name       string
		categories []Category
	}{
		{"reserved others", []Category{{Name: "Others", Extensions: []string{".x"}}}},
		{"reserved others lowercase", []Category{{Name: "others"}}},
		{"empty name", []Category{{Name: "  "}}},
		{"duplicate", []Category{{Name: "A"}, {Name: "A"}}},
		{"destination name", []Category{{Name: internal.DestFolderName}}},
		{"path separator", []Category{{Name: "a/b"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTable(tc.categories); err == nil {
				t.Error("NewTable() expected error, got nil")
			}
		})
	}
}

func TestTable_Categories_IsCopy(t *testing.T) {
	table := Default()
	cats := table.Categories()
	cats[0].Extensions[0] = ".changed"

	if got := table.Classify("x.pdf"); got != "PDFs" {
		t.Errorf("table mutated through Categories(): Classify(x.pdf) = %q", got)
	}
	if table.Categories()[0].Extensions[0] != ".pdf" {
		t.Error("Categories() should return a copy")
	}
}
