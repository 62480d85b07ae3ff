package ingest

import (
	"github.com/joseph-ayodele/rider-orders/constants"
)

// AllowedExt checks if a file extension is in the allowed image set.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}
