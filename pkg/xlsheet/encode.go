package xlsheet

import (
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// storable reports whether s can be stored as cell text without loss.
func storable(s string) bool {
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) > excelize.TotalCellChars {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// encodeValue returns the value to store for v. Text that is not valid
// UTF-8 is re-read as ISO-8859-1; ok is false when neither form is storable.
func encodeValue(v interface{}) (interface{}, bool) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return v, true
	}

	if storable(s) {
		return s, true
	}
	if utf8.ValidString(s) {
		return nil, false
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil || !storable(decoded) {
		return nil, false
	}
	return decoded, true
}
