package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the exported series.
const SheetName = "Gold Prices"

var xlsxHeader = []interface{}{"Date", "Open", "High", "Low", "Close", "Volume", "Unit"}

// XLSXSaver writes rows as an Excel workbook with a header row.
type XLSXSaver struct{}

func (XLSXSaver) Extension() string { return "xlsx" }
func (XLSXSaver) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXSaver) Write(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Date, r.Open, r.High, r.Low, r.Close, r.Volume, r.Unit}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f.Write(w)
}
