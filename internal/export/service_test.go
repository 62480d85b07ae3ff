package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/entity"
)

func sampleResults() []entity.ExtractionResult {
	return []entity.ExtractionResult{
		{Filename: "a.png", Today: "35", Total: "1250", Remark: "recognized", Status: constants.ResultRecognized},
		{Filename: "b.gif", Remark: "unsupported format", Status: constants.ResultSkipped},
		{Filename: "c.jpg", Today: "模糊", Remark: "incomplete format: c.jpg,模糊", Status: constants.ResultPartial},
		{Filename: "d.png", Today: "0035", Total: "无数据", Remark: "recognized", Status: constants.ResultRecognized},
	}
}

func readRows(t *testing.T, xlsx []byte) (*excelize.File, [][]string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	return f, rows
}

func TestExportXLSX(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	xlsx, err := svc.ExportXLSX(context.Background(), sampleResults())
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, rows := readRows(t, xlsx)
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Errorf("sheets = %v", sheets)
	}

	want := [][]string{
		{"Filename", "Today Completed", "Total Completed", "Remark"},
		{"a.png", "35", "1250", "recognized"},
		{"b.gif", "", "", "unsupported format"},
		{"c.jpg", "模糊", "", "incomplete format: c.jpg,模糊"},
		{"d.png", "0035", "无数据", "recognized"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExportXLSX_NoResults(t *testing.T) {
	xlsx, err := NewService(nil).ExportXLSX(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	_, rows := readRows(t, xlsx)
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestWriteReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := svc.WriteReport(context.Background(), fs, "/out/nested/report.xlsx", sampleResults()); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	b, err := afero.ReadFile(fs, "/out/nested/report.xlsx")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	_, rows := readRows(t, b)
	if len(rows) != len(sampleResults())+1 {
		t.Errorf("got %d rows, want %d", len(rows), len(sampleResults())+1)
	}
}
