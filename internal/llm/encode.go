package llm

import (
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/joseph-ayodele/rider-orders/constants"
)

// ReadAsDataURL reads the whole file and returns it as a base64 data URL.
func ReadAsDataURL(fs afero.Fs, path string) (string, error) {
	mt := constants.MimeByExt(filepath.Ext(path))
	if mt == "" {
		return "", fmt.Errorf("no mime type for %q", filepath.Ext(path))
	}
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
