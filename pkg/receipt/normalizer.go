package receipt

import (
	"Finora-Backend/domain"

	"github.com/disintegration/imaging"
)

const (
	maxImageDimension = 2000
	jpegQuality       = 85
)

// NormalizeImage re-encodes a raster receipt image capped at 2000x2000 pixels,
// preserving aspect ratio and never upscaling, to bound storage size and the
// extraction-service payload. The destination must carry a .jpg extension.
func NormalizeImage(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return domain.ErrCorruptImage
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	return imaging.Save(img, dstPath, imaging.JPEGQuality(jpegQuality))
}
