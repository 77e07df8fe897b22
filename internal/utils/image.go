package utils

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/gen2brain/heic"
)

// NormalizedExt returns the lowercased extension of a filename, including
// the leading dot ("" when the name has no extension).
func NormalizedExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsHEIC reports whether the extension names an HEIF container.
func IsHEIC(ext string) bool {
	return ext == ".heic" || ext == ".heif"
}

// ReplaceExt swaps the extension of a filename, keeping the stem.
func ReplaceExt(filename, newExt string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + newExt
}

// DecodeImage structurally decodes an image payload. HEIF containers go
// through the dedicated decoder; everything else uses the registered
// stdlib formats (jpeg, png, gif).
func DecodeImage(data []byte, ext string) (image.Image, error) {
	if IsHEIC(ext) {
		return heic.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// EncodeJPEG flattens an image to three-channel color and re-encodes it
// as JPEG at the given quality.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	bounds := img.Bounds()
	rgb := image.NewRGBA(bounds)
	draw.Draw(rgb, bounds, img, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
