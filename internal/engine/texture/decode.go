// Package texture decodes images and uploads them as 2D OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode decodes image data. TGA is selected by the name's extension, other
// formats (png, jpeg, bmp, webp) are sniffed from the data.
func Decode(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// DecodeRGBA decodes image data into RGBA with rows flipped for GL.
func DecodeRGBA(name string, data []byte) (*image.RGBA, error) {
	img, err := Decode(name, data)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img, true), nil
}

// ToRGBA converts img to a zero-origin *image.RGBA. With flip the rows are
// reversed so the first row is the bottom of the image, as GL samples it.
func ToRGBA(img image.Image, flip bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if flip {
		flipRows(rgba)
	}
	return rgba
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
