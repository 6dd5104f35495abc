package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

func TestRunLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	_, errOut, code := runCLI([]string{"-f", path, "read-row", "1"})
	if code == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if !strings.Contains(errOut, "Failed to load "+path+".xlsx.") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
	if !strings.Contains(errOut, "Please check if the document exists") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestRunSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "book")
	_, errOut, code := runCLI([]string{"-f", path, "new"})
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(errOut, "Failed to save "+path+".xlsx.") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
	if !strings.Contains(errOut, "Please check if the document is open and try again.") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"save",
			xlsheet.NewSaveError("b.xlsx", errors.New("denied")),
			"Failed to save b.xlsx.\nPlease check if the document is open and try again.\n",
		},
		{
			"load",
			xlsheet.NewOpenError("b.xlsx", xlsheet.ModeLoad, xlsheet.ErrFileNotFound),
			"Failed to load b.xlsx.\nPlease check if the document exists and try again.\n",
		},
		{
			"create",
			xlsheet.NewOpenError("b.xlsx", xlsheet.ModeCreate, errors.New("busy")),
			"Failed to create b.xlsx: busy\n",
		},
		{
			"save during create",
			xlsheet.NewOpenError("b.xlsx", xlsheet.ModeCreate, xlsheet.NewSaveError("b.xlsx", errors.New("denied"))),
			"Failed to save b.xlsx.\nPlease check if the document is open and try again.\n",
		},
		{"other", errors.New("boom"), "Error: boom\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		report(&buf, tt.err)
		if buf.String() != tt.expected {
			t.Errorf("%s: report = %q, expected %q", tt.name, buf.String(), tt.expected)
		}
	}
}

func TestRunNoFile(t *testing.T) {
	t.Setenv(envFile, "")
	_, errOut, code := runCLI([]string{"sheets"})
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(errOut, "no workbook given") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestRunWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book")
	mustRun(t, "-f", path, "new")
	mustRun(t, "-f", path, "write-column", "B", "Name", "Alice", "Bob", "--bold")
	mustRun(t, "-f", path, "write-row", "1", "3", "4", "--start-col", "C", "--infer")

	out := mustRun(t, "-f", path, "read-column", "2")
	var column map[string][]interface{}
	decode(t, out, &column)
	if got := column["Name"]; len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Fatalf("read-column = %v", column)
	}

	out = mustRun(t, "-f", path, "read-row", "1", "--start-col", "2")
	var row map[string][]interface{}
	decode(t, out, &row)
	if got := row["Row: 1"]; len(got) != 3 || got[0] != "Name" || got[1] != float64(3) || got[2] != float64(4) {
		t.Fatalf("read-row = %v", row)
	}
}

func TestRunAppendAndSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	mustRun(t, "-f", path, "new")
	mustRun(t, "-f", path, "write-row", "1", "a", "b")
	mustRun(t, "-f", path, "append-row", "1", "c")
	mustRun(t, "-f", path, "append-column", "A", "below")
	mustRun(t, "-f", path, "write-cell", "E5", "corner")
	mustRun(t, "-f", path, "create-sheets", "Summary", "Raw")

	out := mustRun(t, "-f", path, "sheets")
	if out != "* Sheet1\n  Summary\n  Raw\n" {
		t.Fatalf("sheets = %q", out)
	}

	out = mustRun(t, "-f", path, "read-cell", "E5")
	if out != "corner\n" {
		t.Fatalf("read-cell = %q", out)
	}

	out = mustRun(t, "-f", path, "dump")
	var wb models.WorkbookData
	decode(t, out, &wb)
	if wb.ActiveSheet != "Sheet1" || len(wb.Sheets) != 3 {
		t.Fatalf("dump = %+v", wb)
	}
	if wb.Sheets[0].UsedRange != "A1:E5" {
		t.Fatalf("used range = %q", wb.Sheets[0].UsedRange)
	}
	if wb.Sheets[0].Rows[0].C["3"] != "c" || wb.Sheets[0].Rows[1].C["1"] != "below" {
		t.Fatalf("rows = %+v", wb.Sheets[0].Rows)
	}
}

func TestRunFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	t.Setenv(envFile, path)
	mustRun(t, "new")
	out := mustRun(t, "sheets")
	if out != "* Sheet1\n" {
		t.Fatalf("sheets = %q", out)
	}
}

func TestRunInvalidColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book")
	mustRun(t, "-f", path, "new")
	_, errOut, code := runCLI([]string{"-f", path, "read-column", "1A"})
	if code != 1 || !strings.Contains(errOut, "invalid column") {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1", 1},
		{"27", 27},
		{"A", 1},
		{"AA", 27},
		{"c", 3},
	}

	for _, tt := range tests {
		got, err := parseColumn(tt.input)
		if err != nil {
			t.Fatalf("parseColumn(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("parseColumn(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func runCLI(args []string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, code := runCLI(args)
	if code != 0 {
		t.Fatalf("%v: exit code %d, stderr: %s", args, code, errOut)
	}
	return out
}

func decode(t *testing.T, data string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(data), v); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
}
