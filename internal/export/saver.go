package export

import (
	"io"
	"strings"
)

// Saver writes a series in one file format.
type Saver interface {
	Extension() string
	ContentType() string
	Write(w io.Writer, rows []Row) error
}

// Formats lists the supported export formats.
var Formats = []string{"json", "xlsx", "parquet"}

// NewSaver returns the saver for format, or nil if unsupported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONSaver{}
	case "xlsx":
		return XLSXSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
