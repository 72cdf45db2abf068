// Package imgio provides image loading and conversion between Go images
// and OpenCV Mats for the wound measurement pipeline.
package imgio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gocv.io/x/gocv"

	_ "golang.org/x/image/tiff"
)

// Load opens and decodes an image file (JPEG, PNG, or TIFF).
// Returns the decoded image and its format name.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// ToMat converts a Go image.Image to an OpenCV Mat.
func ToMat(srcImg image.Image) (gocv.Mat, error) {
	bounds := srcImg.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid image dimensions %dx%d", w, h)
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := srcImg.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Convert from 16-bit to 8-bit and BGR order for OpenCV
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	return mat, nil
}

// MaskToImage converts a single-channel binary mask Mat to a grayscale image.
func MaskToImage(mask gocv.Mat) *image.Gray {
	h, w := mask.Rows(), mask.Cols()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetGray(x, y, color.Gray{Y: mask.GetUCharAt(y, x)})
		}
	}
	return out
}

// OverlayMask tints mask pixels on top of the source photo so the detected
// region can be inspected visually. The tint is blended at half opacity.
func OverlayMask(srcImg image.Image, mask *image.Gray, tint color.RGBA) *image.RGBA {
	bounds := srcImg.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := srcImg.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			px := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
			if mask.GrayAt(x, y).Y > 0 {
				px.R = uint8((uint16(px.R) + uint16(tint.R)) / 2)
				px.G = uint8((uint16(px.G) + uint16(tint.G)) / 2)
				px.B = uint8((uint16(px.B) + uint16(tint.B)) / 2)
			}
			out.SetRGBA(x, y, px)
		}
	}
	return out
}
