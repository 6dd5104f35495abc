package xlsheet

import (
	"path/filepath"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"
)

// Snapshot returns the non-empty cells of every sheet in workbook order.
func (h *Handle) Snapshot() (*models.WorkbookData, error) {
	wb := &models.WorkbookData{
		BookName:    filepath.Base(h.path),
		ActiveSheet: h.sheet,
	}

	for _, sheetName := range h.file.GetSheetList() {
		rows, err := parser.ExtractCells(h.file, sheetName)
		if err != nil {
			return nil, err
		}

		usedRange, err := parser.UsedRange(h.file, sheetName)
		if err != nil {
			return nil, err
		}

		wb.Sheets = append(wb.Sheets, models.SheetData{
			Name:      sheetName,
			Active:    sheetName == h.sheet,
			UsedRange: usedRange,
			Rows:      rows,
		})
	}

	return wb, nil
}
