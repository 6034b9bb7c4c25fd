package export

import (
	"io"

	"github.com/parquet-go/parquet-go"
)

// ParquetSaver writes rows as a Parquet file.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string   { return "parquet" }
func (ParquetSaver) ContentType() string { return "application/vnd.apache.parquet" }

func (ParquetSaver) Write(w io.Writer, rows []Row) error {
	return parquet.Write(w, rows)
}
