package models

// WorkbookData represents a workbook snapshot with sheets in workbook order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// ActiveSheet is the name of the sheet the handle operates on.
	ActiveSheet string `json:"active_sheet"`
	// Sheets lists every sheet in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// Sheet returns the sheet with the given name, or nil if absent.
func (w *WorkbookData) Sheet(name string) *SheetData {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}
