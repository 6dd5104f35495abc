// Package output serializes workbook snapshots and read results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/models"
)

// ToJSON serializes a workbook snapshot.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// ValuesToJSON serializes the keyed values returned by column and row reads.
func ValuesToJSON(values map[string][]interface{}, pretty bool) ([]byte, error) {
	return marshal(values, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
