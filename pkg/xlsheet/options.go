// Package xlsheet provides a handle over a single .xlsx workbook that reads
// and writes cells, rows and columns of its active sheet and saves the
// workbook after every change.
package xlsheet

import "github.com/rs/zerolog"

// Mode represents how a workbook file is opened.
type Mode string

const (
	// ModeLoad opens an existing workbook file.
	ModeLoad Mode = "load"
	// ModeCreate discards any existing file and starts from an empty workbook.
	ModeCreate Mode = "create"
)

// DefaultPlaceholder is written in place of values that cannot be stored as text.
const DefaultPlaceholder = "Content Error"

// Options configures how a Handle is opened.
type Options struct {
	// Mode specifies whether the file is loaded or recreated.
	Mode Mode
	// Placeholder replaces values that cannot be encoded.
	// If empty, DefaultPlaceholder is used.
	Placeholder string
	// Logger receives debug and warning events.
	// If nil, logging is disabled.
	Logger *zerolog.Logger
}

// DefaultOptions returns default open options.
func DefaultOptions() Options {
	return Options{
		Mode:        ModeLoad,
		Placeholder: DefaultPlaceholder,
	}
}

func (o Options) placeholder() string {
	if o.Placeholder == "" {
		return DefaultPlaceholder
	}
	return o.Placeholder
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Style is the font flag pair applied to cells written by batch operations.
type Style struct {
	Bold   bool
	Italic bool
}
