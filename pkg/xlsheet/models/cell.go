// Package models defines the data structures returned by workbook snapshots.
package models

// CellRow represents the non-empty cells of a single sheet row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to the typed cell value.
	C map[string]interface{} `json:"c"`
}
