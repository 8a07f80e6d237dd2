package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"toon", FormatTOON},
		{"TOON", FormatTOON},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFormatter_Stdout(t *testing.T) {
	f, err := NewFormatter(FormatText, "", true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	defer f.Close()

	if f.Format() != FormatText {
		t.Errorf("format = %q, want %q", f.Format(), FormatText)
	}
	if !f.Colored() {
		t.Error("colored should be true")
	}
	if f.file != nil {
		t.Error("file should be nil for stdout")
	}
}

func TestNewFormatter_FileDisablesColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	f, err := NewFormatter(FormatText, path, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	defer f.Close()

	if f.Colored() {
		t.Error("colored should be disabled when writing to a file")
	}
	if f.file == nil {
		t.Error("file should be set")
	}
}

func TestOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	f, err := NewFormatter(FormatJSON, path, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	data := map[string]any{"unused": []string{"a.js", "b.js"}}
	if err := f.Output(data); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	f.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestTable_RenderText(t *testing.T) {
	table := NewTable(
		"Unused Files",
		[]string{"File"},
		[][]string{{"/proj/orphan.js"}},
		nil,
		nil,
	)

	var buf bytes.Buffer
	if err := table.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Unused Files") {
		t.Error("output missing title")
	}
	if !strings.Contains(out, "/proj/orphan.js") {
		t.Error("output missing row")
	}
}

func TestTable_RenderMarkdown(t *testing.T) {
	table := NewTable(
		"Unused Files",
		[]string{"File", "Count"},
		[][]string{{"a.js", "1"}},
		[]string{"Total", "1"},
		nil,
	)

	var buf bytes.Buffer
	if err := table.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## Unused Files") {
		t.Error("output missing title heading")
	}
	if !strings.Contains(out, "| File | Count |") {
		t.Error("output missing header row")
	}
	if !strings.Contains(out, "| --- | --- |") {
		t.Error("output missing separator row")
	}
	if !strings.Contains(out, "| a.js | 1 |") {
		t.Error("output missing data row")
	}
}

func TestTable_RenderData(t *testing.T) {
	table := NewTable("", []string{"File"}, [][]string{{"a.js"}}, nil, nil)

	data, ok := table.RenderData().([]map[string]string)
	if !ok {
		t.Fatalf("RenderData() type = %T, want []map[string]string", table.RenderData())
	}
	if len(data) != 1 || data[0]["File"] != "a.js" {
		t.Errorf("RenderData() = %v", data)
	}
}
