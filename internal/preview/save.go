package preview

import (
	"io"

	"github.com/disintegration/imaging"
	pkgerrors "github.com/pkg/errors"
)

// Save writes the preview to path. The format follows the file extension.
func (r *Result) Save(path string) error {
	if err := imaging.Save(r.Image, path); err != nil {
		return pkgerrors.Wrap(err, "failed to save preview")
	}
	return nil
}

// Encode writes the preview to w as PNG.
func (r *Result) Encode(w io.Writer) error {
	if err := imaging.Encode(w, r.Image, imaging.PNG); err != nil {
		return pkgerrors.Wrap(err, "failed to encode preview")
	}
	return nil
}
