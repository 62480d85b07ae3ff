package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/rider-orders/internal/entity"
)

// SheetName is the worksheet the report rows are written to.
const SheetName = "Orders"

// Headers are the report columns, in order.
var Headers = []string{
	"Filename",
	"Today Completed",
	"Total Completed",
	"Remark",
}

// Service produces the XLSX report for a batch run.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per result, in order.
func (s *Service) ExportXLSX(ctx context.Context, results []entity.ExtractionResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.xlsx.close_error", "error", err)
		}
	}()

	// rename the default sheet so the workbook has exactly one
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := i + 2
		for col, v := range r.Row() {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			// strings keep "0035" and "模糊" exactly as the model wrote them
			if err := f.SetCellStr(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(SheetName, "A", "A", 28) // filename
	_ = f.SetColWidth(SheetName, "B", "C", 16) // counts
	_ = f.SetColWidth(SheetName, "D", "D", 60) // remark

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(results),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
