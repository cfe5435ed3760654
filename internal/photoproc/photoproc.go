// Package photoproc prepares uploaded defect photos for storage.
package photoproc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage is returned when a JPEG or PNG upload cannot be decoded.
var ErrInvalidImage = errors.New("invalid image")

const jpegQuality = 85

type Normalizer struct {
	maxDimension int
}

// NewNormalizer returns a Normalizer that fits images inside a
// maxDimension x maxDimension box. A non-positive maxDimension disables
// resizing.
func NewNormalizer(maxDimension int) *Normalizer {
	return &Normalizer{maxDimension: maxDimension}
}

// Normalize applies the EXIF orientation, downsizes oversized images and
// re-encodes JPEG and PNG data, which also drops embedded metadata such as
// GPS tags. Other formats are returned unchanged.
func (n *Normalizer) Normalize(data []byte, mimeType string) ([]byte, string, error) {
	var format imaging.Format
	switch mimeType {
	case "image/jpeg":
		format = imaging.JPEG
	case "image/png":
		format = imaging.PNG
	default:
		return data, mimeType, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if n.maxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > n.maxDimension || b.Dy() > n.maxDimension {
			img = imaging.Fit(img, n.maxDimension, n.maxDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), mimeType, nil
}
