package entity

// ImageFile is one entry of the input directory, discovered at listing time.
type ImageFile struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Ext      string `json:"ext"` // lowercased, without '.'
	IsDir    bool   `json:"is_dir,omitempty"`
}
