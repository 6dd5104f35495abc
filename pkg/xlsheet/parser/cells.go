// Package parser provides typed access to excelize worksheets.
package parser

import (
	"strconv"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
	"github.com/xuri/excelize/v2"
)

var rawValue = excelize.Options{RawCellValue: true}

// CellValue reads a single cell and returns its typed value.
// It returns nil for an absent cell; a stored empty string is returned as "".
func CellValue(f *excelize.File, sheetName, cell string) (interface{}, error) {
	raw, err := f.GetCellValue(sheetName, cell, rawValue)
	if err != nil {
		return nil, err
	}

	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}
	if absent(raw, cellType) {
		return nil, nil
	}
	return typedValue(raw, cellType), nil
}

// absent reports whether a cell holds no value. Numeric cells carry no
// type attribute, so only an untyped cell without text is absent.
func absent(raw string, cellType excelize.CellType) bool {
	return raw == "" && cellType == excelize.CellTypeUnset
}

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing rows with at least one present cell.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, rawValue)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{})

		for colIdx, cellValue := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if absent(cellValue, cellType) {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = typedValue(cellValue, cellType)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowNum,
				C: cellMap,
			})
		}
	}

	return result, nil
}

func typedValue(raw string, cellType excelize.CellType) interface{} {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	default:
		return ParseValue(raw)
	}
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
