package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/mandykoh/prism"
)

var ErrUnsupportedChannels = errors.New("image must have 3 or 4 color channels")

// Image is decoded pixel data ready for GPU upload. Pix is tightly packed
// rows of Channels bytes per pixel, bottom row first, matching OpenGL's
// bottom-left texture origin.
type Image struct {
	Path     string
	Pix      []uint8
	Width    int32
	Height   int32
	Channels int32
}

// LoadImage decodes a png or jpeg file into packed RGB or RGBA pixels.
// Grayscale and other unsupported layouts return ErrUnsupportedChannels.
func LoadImage(path string) (Image, error) {

	file, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("opening image file failed. Path: %s; Err: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Image{}, fmt.Errorf("decoding image failed. Path: %s; Err: %w", path, err)
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return Image{}, fmt.Errorf("image '%s' is not RGB or RGBA: %w", path, ErrUnsupportedChannels)
	}

	nrgba := prism.ConvertImageToNRGBA(img, runtime.NumCPU())

	bounds := nrgba.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := Image{
		Path:   path,
		Width:  int32(width),
		Height: int32(height),
	}

	if isOpaque(img) {

		// Drop the constant alpha so the GPU upload can use an RGB format
		out.Channels = 3
		out.Pix = make([]uint8, 0, width*height*3)

		for y := height - 1; y >= 0; y-- {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
			for x := 0; x < width; x++ {
				out.Pix = append(out.Pix, row[x*4], row[x*4+1], row[x*4+2])
			}
		}

		return out, nil
	}

	out.Channels = 4
	out.Pix = make([]uint8, 0, width*height*4)

	for y := height - 1; y >= 0; y-- {
		out.Pix = append(out.Pix, nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+width*4]...)
	}

	return out, nil
}

func isOpaque(img image.Image) bool {

	type opaquer interface {
		Opaque() bool
	}

	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}

	return false
}
