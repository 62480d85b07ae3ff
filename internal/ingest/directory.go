package ingest

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/entity"
)

// ListDirectory returns every entry directly under root in filename order.
// Paths listed in exclude are left out. A missing root is the only error the
// batch treats as fatal.
func ListDirectory(fs afero.Fs, root string, exclude ...string) ([]entity.ImageFile, error) {
	if strings.TrimSpace(root) == "" {
		return nil, common.DirNotFoundError(root)
	}
	ok, err := afero.DirExists(fs, root)
	if err != nil {
		return nil, common.WrapError(err, "stat input folder")
	}
	if !ok {
		return nil, common.DirNotFoundError(root)
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, p := range exclude {
		if p != "" {
			skip[resolvePath(p)] = struct{}{}
		}
	}

	infos, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, common.WrapError(err, "read input folder")
	}

	files := make([]entity.ImageFile, 0, len(infos))
	for _, fi := range infos {
		path := filepath.Join(root, fi.Name())
		if _, drop := skip[resolvePath(path)]; drop {
			continue
		}
		files = append(files, entity.ImageFile{
			Path:     path,
			Filename: fi.Name(),
			Size:     fi.Size(),
			Ext:      constants.NormalizeExt(filepath.Ext(fi.Name())),
			IsDir:    fi.IsDir(),
		})
	}
	return files, nil
}

// resolvePath makes relative and absolute spellings of the same file compare equal.
func resolvePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
