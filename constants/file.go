package constants

import "strings"

// MaxImageBytesDefault is the largest image we will send inline to the vision model.
const MaxImageBytesDefault int64 = 5 * 1024 * 1024

// ProbeBytes is how much of a file must be readable for it to count as intact.
const ProbeBytes = 100

// AllowedExtensions holds the image extensions the vision model accepts.
var AllowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"bmp":  {},
}

var mimeByExt = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"bmp":  "image/bmp",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MimeByExt returns the MIME type for an allowed extension, or "" if unknown.
func MimeByExt(ext string) string {
	return mimeByExt[NormalizeExt(ext)]
}
