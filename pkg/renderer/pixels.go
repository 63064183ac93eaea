package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Gamma is the display gamma used when packing linear colors into bytes
const Gamma = 2.2

// PixelBuffer holds linear-space pixel colors in row-major order, row 0 at the top
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []core.Vec3
}

// NewPixelBuffer allocates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (pb *PixelBuffer) At(i, j int) core.Vec3 {
	return pb.Pix[j*pb.Width+i]
}

// Set stores the color of pixel (i, j)
func (pb *PixelBuffer) Set(i, j int, c core.Vec3) {
	pb.Pix[j*pb.Width+i] = c
}

// ToSRGB packs the buffer into gamma-encoded 8-bit RGB triples
func (pb *PixelBuffer) ToSRGB() []byte {
	data := make([]byte, 0, len(pb.Pix)*3)
	for _, c := range pb.Pix {
		data = append(data, EncodeChannel(c.X), EncodeChannel(c.Y), EncodeChannel(c.Z))
	}
	return data
}

// ToImage converts the buffer into an opaque RGBA image
func (pb *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for j := 0; j < pb.Height; j++ {
		for i := 0; i < pb.Width; i++ {
			c := pb.At(i, j)
			img.SetRGBA(i, j, color.RGBA{
				R: EncodeChannel(c.X),
				G: EncodeChannel(c.Y),
				B: EncodeChannel(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// AverageLuminance returns the mean linear luminance of the buffer
func (pb *PixelBuffer) AverageLuminance() float64 {
	if len(pb.Pix) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range pb.Pix {
		total += core.Luminance(c)
	}
	return total / float64(len(pb.Pix))
}

var byteRange = core.NewInterval(0, 255)

// EncodeChannel gamma-encodes one linear channel value and truncates it into a byte
func EncodeChannel(linear float64) byte {
	if !(linear > 0) {
		// negative and NaN inputs map to black
		return 0
	}
	return byte(byteRange.Clamp(math.Pow(linear, 1.0/Gamma) * 255))
}
