package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG writes 8-bit interleaved pixel data to a PNG file at path.
// components selects Gray (1), GrayAlpha (2), RGB (3) or RGBA (4) data.
func WritePNG(path string, width, height, components int, data []byte) error {
	// Validate before touching the filesystem
	img, err := packImage(width, height, components, data)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes 8-bit interleaved pixel data as PNG to w
func EncodePNG(w io.Writer, width, height, components int, data []byte) error {
	img, err := packImage(width, height, components, data)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// packImage wraps raw interleaved bytes in the matching image type
func packImage(width, height, components int, data []byte) (image.Image, error) {
	if components < 1 || components > 4 {
		return nil, fmt.Errorf("%w: %d", ErrComponents, components)
	}
	if width <= 0 || height <= 0 || len(data) != width*height*components {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%dx%d", ErrBufferSize, len(data), width, height, components)
	}

	rect := image.Rect(0, 0, width, height)
	switch components {
	case 1:
		return &image.Gray{Pix: data, Stride: width, Rect: rect}, nil
	case 2:
		// No 8-bit gray+alpha image type; expand to non-premultiplied RGBA
		img := image.NewNRGBA(rect)
		for p := 0; p < width*height; p++ {
			g, a := data[2*p], data[2*p+1]
			copy(img.Pix[4*p:], []byte{g, g, g, a})
		}
		return img, nil
	case 3:
		img := image.NewNRGBA(rect)
		for p := 0; p < width*height; p++ {
			copy(img.Pix[4*p:], []byte{data[3*p], data[3*p+1], data[3*p+2], 255})
		}
		return img, nil
	default:
		return &image.NRGBA{Pix: data, Stride: 4 * width, Rect: rect}, nil
	}
}
