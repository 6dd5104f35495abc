package xlsheet

import (
	"fmt"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"
	"github.com/xuri/excelize/v2"
)

// NoHeaderKey keys the values returned by ReadColumn when the column has no header.
const NoHeaderKey = "None"

// RowKey returns the key ReadRow uses for row.
func RowKey(row int) string {
	return fmt.Sprintf("Row: %d", row)
}

// ReadColumn reads the values of column col from startRow downward,
// stopping at the first empty cell. With header set, the cell at startRow
// is the result's key and reading starts on the row below it; otherwise
// the key is NoHeaderKey.
func (h *Handle) ReadColumn(col int, header bool, startRow int) (map[string][]interface{}, error) {
	if err := checkIndex(col, startRow); err != nil {
		return nil, err
	}

	key := NoHeaderKey
	row := startRow
	if header {
		v, err := h.cellAt(col, row)
		if err != nil {
			return nil, err
		}
		key = headerKey(v)
		row++
	}

	values, err := h.scan(col, row, 0, 1)
	if err != nil {
		return nil, err
	}
	return map[string][]interface{}{key: values}, nil
}

// ReadRow reads the values of row from startCol rightward, stopping at the
// first empty cell. The result is keyed by RowKey(row).
func (h *Handle) ReadRow(row, startCol int) (map[string][]interface{}, error) {
	if err := checkIndex(startCol, row); err != nil {
		return nil, err
	}

	values, err := h.scan(startCol, row, 1, 0)
	if err != nil {
		return nil, err
	}
	return map[string][]interface{}{RowKey(row): values}, nil
}

// WriteColumn writes values into successive cells of column col starting at
// startRow, applies style to each of them and saves once.
func (h *Handle) WriteColumn(col int, values []interface{}, startRow int, style Style) error {
	return h.writeLine(col, startRow, 0, 1, values, style)
}

// WriteRow writes values into successive cells of row starting at startCol,
// applies style to each of them and saves once.
func (h *Handle) WriteRow(row int, values []interface{}, startCol int, style Style) error {
	return h.writeLine(startCol, row, 1, 0, values, style)
}

// AppendRow writes values into row starting at its first empty cell,
// counting from column 1.
func (h *Handle) AppendRow(row int, values []interface{}, style Style) error {
	col, err := h.firstEmpty(1, row, 1, 0)
	if err != nil {
		return err
	}
	return h.WriteRow(row, values, col, style)
}

// AppendColumn writes values into column col starting at its first empty
// cell, counting from row 1.
func (h *Handle) AppendColumn(col int, values []interface{}, style Style) error {
	row, err := h.firstEmpty(col, 1, 0, 1)
	if err != nil {
		return err
	}
	return h.WriteColumn(col, values, row, style)
}

func (h *Handle) writeLine(col, row, dCol, dRow int, values []interface{}, style Style) error {
	if err := checkIndex(col, row); err != nil {
		return err
	}

	if n := len(values); n > 0 {
		if _, err := excelize.CoordinatesToCellName(col+(n-1)*dCol, row+(n-1)*dRow); err != nil {
			return fmt.Errorf("%d values from column %d, row %d: %w", n, col, row, err)
		}
	}

	styleID, err := h.styleID(style)
	if err != nil {
		return err
	}

	// Past the bounds check, an engine error leaves earlier cells of the
	// batch in memory but unsaved; the next successful save writes them.
	for _, v := range values {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := h.setValue(cell, v); err != nil {
			return err
		}
		if err := h.file.SetCellStyle(h.sheet, cell, cell, styleID); err != nil {
			return err
		}
		col += dCol
		row += dRow
	}

	return h.Save()
}

// scan collects values from (col, row) stepping by (dCol, dRow) until the
// first empty cell.
func (h *Handle) scan(col, row, dCol, dRow int) ([]interface{}, error) {
	values := []interface{}{}
	for {
		v, err := h.cellAt(col, row)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return values, nil
		}
		values = append(values, v)
		col += dCol
		row += dRow
	}
}

// firstEmpty returns the position along the line of the first empty cell
// from (col, row).
func (h *Handle) firstEmpty(col, row, dCol, dRow int) (int, error) {
	if err := checkIndex(col, row); err != nil {
		return 0, err
	}
	for {
		v, err := h.cellAt(col, row)
		if err != nil {
			return 0, err
		}
		if v == nil {
			if dCol != 0 {
				return col, nil
			}
			return row, nil
		}
		col += dCol
		row += dRow
	}
}

func (h *Handle) cellAt(col, row int) (interface{}, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	return parser.CellValue(h.file, h.sheet, cell)
}

func headerKey(v interface{}) string {
	if v == nil {
		return NoHeaderKey
	}
	return fmt.Sprint(v)
}

func checkIndex(col, row int) error {
	if col < 1 || row < 1 {
		return fmt.Errorf("%w: column %d, row %d", ErrInvalidIndex, col, row)
	}
	return nil
}
