package pipeline

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/entity"
	"github.com/joseph-ayodele/rider-orders/internal/ingest"
	"github.com/joseph-ayodele/rider-orders/internal/llm"
)

// Stats summarizes a batch run.
type Stats struct {
	Total      int
	Recognized int
	Partial    int
	Unparsable int
	CallErrors int
	Skipped    int
}

func (s *Stats) add(status constants.ResultStatus) {
	s.Total++
	switch status {
	case constants.ResultRecognized:
		s.Recognized++
	case constants.ResultPartial:
		s.Partial++
	case constants.ResultUnparsable:
		s.Unparsable++
	case constants.ResultCallError:
		s.CallErrors++
	case constants.ResultSkipped:
		s.Skipped++
	}
}

// Processor validates, encodes, submits and parses files one at a time.
type Processor struct {
	logger    *slog.Logger
	fs        afero.Fs
	validator *ingest.Validator
	extractor llm.OrdersExtractor
	throttle  *Throttle
}

func NewProcessor(
	logger *slog.Logger,
	fs afero.Fs,
	validator *ingest.Validator,
	extractor llm.OrdersExtractor,
	throttle *Throttle,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if throttle == nil {
		throttle = NewThrottle(0)
	}
	return &Processor{
		logger:    logger,
		fs:        fs,
		validator: validator,
		extractor: extractor,
		throttle:  throttle,
	}
}

// Run processes files in order and returns exactly one result per file, in the same order.
// Per-file failures become rows with a remark; nothing here aborts the batch.
func (p *Processor) Run(ctx context.Context, files []entity.ImageFile) ([]entity.ExtractionResult, Stats) {
	results := make([]entity.ExtractionResult, 0, len(files))
	var stats Stats

	p.logger.Info("batch.start", "files", len(files), "run_id", common.RunIDFromContext(ctx))
	for i, f := range files {
		p.logger.Info("batch.file", "index", i+1, "of", len(files), "filename", f.Filename)

		res := p.ProcessFile(ctx, f)
		results = append(results, res)
		stats.add(res.Status)
	}
	p.logger.Info("batch.done",
		"total", stats.Total,
		"recognized", stats.Recognized,
		"partial", stats.Partial,
		"unparsable", stats.Unparsable,
		"call_errors", stats.CallErrors,
		"skipped", stats.Skipped,
	)
	return results, stats
}

// ProcessFile runs one file through validate → encode → throttle → call → parse.
func (p *Processor) ProcessFile(ctx context.Context, f entity.ImageFile) entity.ExtractionResult {
	if ok, reason := p.validator.ValidateFile(f); !ok {
		p.logger.Warn("batch.file.skipped", "filename", f.Filename, "reason", reason)
		return skipped(f.Filename, reason)
	}

	dataURL, err := llm.ReadAsDataURL(p.fs, f.Path)
	if err != nil {
		reason := constants.RemarkEncodingFailed + ": " + common.Truncate(err.Error(), constants.ShortErrRunes)
		p.logger.Warn("batch.file.encode_failed", "filename", f.Filename, "error", err)
		return skipped(f.Filename, reason)
	}

	if err := p.throttle.Wait(ctx); err != nil {
		// the call below fails fast on the same context and records the row
		p.logger.Warn("batch.throttle.interrupted", "error", err)
	}

	raw := p.extractor.ExtractOrders(ctx, llm.ExtractRequest{
		Filename:     f.Filename,
		ImageDataURL: dataURL,
	})
	p.logger.Debug("batch.file.raw_reply", "filename", f.Filename, "raw", common.Truncate(raw, constants.RawLogRunes))

	parsed := ParseResult(raw, f.Filename)
	p.logger.Info("batch.file.parsed",
		"filename", f.Filename,
		"status", parsed.Status,
		"today", parsed.Today,
		"total", parsed.Total,
	)
	return entity.ExtractionResult{
		Filename: f.Filename,
		Today:    parsed.Today,
		Total:    parsed.Total,
		Remark:   parsed.Remark,
		Status:   parsed.Status,
	}
}

func skipped(filename, reason string) entity.ExtractionResult {
	return entity.ExtractionResult{
		Filename: filename,
		Remark:   reason,
		Status:   constants.ResultSkipped,
	}
}
