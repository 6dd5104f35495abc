package output

import (
	"strings"
	"testing"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName:    "book.xlsx",
		ActiveSheet: "Sheet1",
		Sheets: []models.SheetData{
			{Name: "Sheet1", Active: true, UsedRange: "A1:A1", Rows: []models.CellRow{{R: 1, C: map[string]interface{}{"1": "x"}}}},
			{Name: "Empty"},
		},
	}

	data, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	expected := `{"book_name":"book.xlsx","active_sheet":"Sheet1","sheets":[` +
		`{"name":"Sheet1","active":true,"used_range":"A1:A1","rows":[{"r":1,"c":{"1":"x"}}]},` +
		`{"name":"Empty"}]}`
	if string(data) != expected {
		t.Errorf("ToJSON = %s, expected %s", data, expected)
	}

	pretty, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"book_name\"") {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestValuesToJSON(t *testing.T) {
	data, err := ValuesToJSON(map[string][]interface{}{"Row: 1": {"a", int64(2)}}, false)
	if err != nil {
		t.Fatalf("ValuesToJSON failed: %v", err)
	}
	if string(data) != `{"Row: 1":["a",2]}` {
		t.Errorf("ValuesToJSON = %s", data)
	}
}
