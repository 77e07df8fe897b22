package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(60 * x), G: uint8(60 * y), B: 128, A: 255})
		}
	}
	return img
}

// MinimalPNG returns a small, fully decodable PNG payload.
func MinimalPNG() []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, testImage())
	return buf.Bytes()
}

// MinimalJPEG returns a small, fully decodable JPEG payload.
func MinimalJPEG() []byte {
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, testImage(), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

// MinimalGIF returns a small, fully decodable GIF payload.
func MinimalGIF() []byte {
	var buf bytes.Buffer
	_ = gif.Encode(&buf, testImage(), nil)
	return buf.Bytes()
}
