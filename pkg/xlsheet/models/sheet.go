package models

// SheetData represents the cell contents of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Active reports whether this is the sheet row and column operations target.
	Active bool `json:"active,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:D10"), empty for a blank sheet.
	UsedRange string `json:"used_range,omitempty"`
	// Rows contains rows holding at least one non-empty cell.
	Rows []CellRow `json:"rows,omitempty"`
}
