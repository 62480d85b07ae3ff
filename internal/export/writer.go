package export

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/entity"
)

// WriteReport exports results and writes the workbook to path, creating the parent directory.
func (s *Service) WriteReport(ctx context.Context, fs afero.Fs, path string, results []entity.ExtractionResult) error {
	xlsx, err := s.ExportXLSX(ctx, results)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return common.WrapError(err, "create report dir")
		}
	}
	if err := afero.WriteFile(fs, path, xlsx, 0o644); err != nil {
		return common.WrapError(err, "write report")
	}
	s.logger.Info("export.report.written", "path", path, "rows", len(results))
	return nil
}
