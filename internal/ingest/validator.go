package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/spf13/afero"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/entity"
)

// header size filetype needs to recognise every format it knows.
const sniffBytes = 261

// Validator decides whether a file may be sent to the vision model.
type Validator struct {
	fs       afero.Fs
	maxBytes int64
	logger   *slog.Logger
}

func NewValidator(fs afero.Fs, maxBytes int64, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if maxBytes <= 0 {
		maxBytes = constants.MaxImageBytesDefault
	}
	return &Validator{fs: fs, maxBytes: maxBytes, logger: logger}
}

// Validate checks extension, size and readability of a path that did not come
// from ListDirectory. The only side effect is a short probe read.
func (v *Validator) Validate(path string) (bool, string) {
	if !AllowedExt(filepath.Ext(path)) {
		return false, constants.RemarkUnsupportedFormat
	}
	st, err := v.fs.Stat(path)
	if err != nil {
		return false, corrupt(err)
	}
	return v.ValidateFile(entity.ImageFile{
		Path:     path,
		Filename: st.Name(),
		Size:     st.Size(),
		Ext:      constants.NormalizeExt(filepath.Ext(path)),
		IsDir:    st.IsDir(),
	})
}

// ValidateFile judges a listed entry. Extension, type and size come from the
// listing; only the header read touches the filesystem.
func (v *Validator) ValidateFile(img entity.ImageFile) (bool, string) {
	if img.IsDir || !AllowedExt(img.Ext) {
		return false, constants.RemarkUnsupportedFormat
	}
	if img.Size > v.maxBytes {
		return false, fmt.Sprintf("%s (%.1fMB)", constants.RemarkImageTooLarge, float64(img.Size)/1024/1024)
	}

	f, err := v.fs.Open(img.Path)
	if err != nil {
		return false, corrupt(err)
	}
	defer func(f afero.File) {
		if err := f.Close(); err != nil {
			v.logger.Warn("ingest.validate.close_error", "path", img.Path, "error", err)
		}
	}(f)

	header := make([]byte, sniffBytes)
	n, err := io.ReadAtLeast(f, header, constants.ProbeBytes)
	if err != nil {
		// fewer than ProbeBytes available
		return false, corrupt(err)
	}

	v.checkMime(img, header[:n])
	return true, constants.RemarkValid
}

// checkMime logs when the content does not look like what the extension claims.
// The extension stays authoritative.
func (v *Validator) checkMime(img entity.ImageFile, header []byte) {
	kind, err := filetype.Match(header)
	if err != nil || kind == types.Unknown {
		return
	}
	want := constants.MimeByExt(img.Ext)
	if kind.MIME.Value != want {
		v.logger.Warn("ingest.validate.mime_mismatch",
			"path", img.Path, "ext_mime", want, "detected_mime", kind.MIME.Value)
	}
}

func corrupt(err error) string {
	return constants.RemarkCorruptFile + ": " + common.Truncate(err.Error(), constants.ShortErrRunes)
}
