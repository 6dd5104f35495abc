package xlsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Extension is the file extension every workbook path carries.
const Extension = ".xlsx"

// Handle is bound to one workbook file and one active sheet within it.
// Every mutating method saves the whole workbook before returning.
//
// A Handle is not safe for concurrent use, and two handles on the same
// path overwrite each other's saves.
type Handle struct {
	path   string
	file   *excelize.File
	sheet  string
	opts   Options
	log    zerolog.Logger
	styles map[Style]int
}

// Open loads or creates the workbook at path according to opts.Mode.
// The extension is appended to path if it is missing.
func Open(path string, opts Options) (*Handle, error) {
	path = WithExtension(path)
	if opts.Mode == "" {
		opts.Mode = ModeLoad
	}

	h := &Handle{
		path:   path,
		opts:   opts,
		log:    opts.logger().With().Str("path", path).Logger(),
		styles: make(map[Style]int),
	}

	switch opts.Mode {
	case ModeLoad:
		if err := h.load(); err != nil {
			return nil, NewOpenError(path, opts.Mode, err)
		}
	case ModeCreate:
		if err := h.create(); err != nil {
			return nil, NewOpenError(path, opts.Mode, err)
		}
	default:
		return nil, NewOpenError(path, opts.Mode, ErrInvalidMode)
	}

	h.sheet = h.file.GetSheetName(h.file.GetActiveSheetIndex())
	h.log.Debug().Str("mode", string(opts.Mode)).Str("sheet", h.sheet).Msg("Workbook opened")
	return h, nil
}

// Load opens the existing workbook at path with default options.
func Load(path string) (*Handle, error) {
	return Open(path, DefaultOptions())
}

// Create replaces the workbook at path with an empty one and saves it.
func Create(path string) (*Handle, error) {
	opts := DefaultOptions()
	opts.Mode = ModeCreate
	return Open(path, opts)
}

// WithExtension returns path with Extension appended unless it already ends with it.
func WithExtension(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}

func (h *Handle) load() error {
	if _, err := os.Stat(h.path); errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}

	f, err := excelize.OpenFile(h.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	h.file = f
	return nil
}

func (h *Handle) create() error {
	if err := os.Remove(h.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove existing file: %w", err)
	}

	h.file = excelize.NewFile()
	if err := h.Save(); err != nil {
		h.file.Close()
		return err
	}
	return nil
}

// Path returns the workbook file path.
func (h *Handle) Path() string {
	return h.path
}

// ActiveSheet returns the name of the sheet row and column operations target.
func (h *Handle) ActiveSheet() string {
	return h.sheet
}

// Sheets returns all sheet names in workbook order.
func (h *Handle) Sheets() []string {
	return h.file.GetSheetList()
}

// Save writes the whole workbook to the handle's path.
func (h *Handle) Save() error {
	if err := h.file.SaveAs(h.path); err != nil {
		h.log.Debug().Err(err).Msg("Save failed")
		return NewSaveError(h.path, err)
	}
	h.log.Debug().Msg("Workbook saved")
	return nil
}

// Close releases the workbook's resources. It does not save.
func (h *Handle) Close() error {
	return h.file.Close()
}

// WriteCell sets the cell at address (e.g. "B3") to value and saves.
func (h *Handle) WriteCell(address string, value interface{}) error {
	if _, _, err := excelize.CellNameToCoordinates(address); err != nil {
		return err
	}
	if err := h.setValue(address, value); err != nil {
		return err
	}
	return h.Save()
}

// ReadCell returns the typed value of the cell at address, or nil if it is empty.
func (h *Handle) ReadCell(address string) (interface{}, error) {
	return parser.CellValue(h.file, h.sheet, address)
}

// CreateSheets appends one sheet per name, in order, and saves once.
// The active sheet is unchanged.
func (h *Handle) CreateSheets(names ...string) error {
	for _, name := range names {
		if _, err := h.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}
	return h.Save()
}

// setValue writes value to cell, substituting the placeholder when the
// value cannot be stored.
func (h *Handle) setValue(cell string, value interface{}) error {
	if encoded, ok := encodeValue(value); ok {
		err := h.file.SetCellValue(h.sheet, cell, encoded)
		if err == nil {
			return nil
		}
		h.log.Warn().Err(err).Str("cell", cell).Msg("Value rejected, writing placeholder")
	} else {
		h.log.Warn().Str("cell", cell).Msg("Value not representable, writing placeholder")
	}
	return h.file.SetCellValue(h.sheet, cell, h.opts.placeholder())
}

// styleID returns the style for s, registering it on first use.
func (h *Handle) styleID(s Style) (int, error) {
	if id, ok := h.styles[s]; ok {
		return id, nil
	}
	id, err := h.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: s.Bold, Italic: s.Italic},
	})
	if err != nil {
		return 0, err
	}
	h.styles[s] = id
	return id, nil
}
