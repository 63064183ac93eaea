package renderer

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePNGComponents(t *testing.T) {
	tests := []struct {
		name       string
		components int
		data       []byte
		expected   [2]color.NRGBA // first and second pixel
	}{
		{"gray", 1, []byte{0, 200}, [2]color.NRGBA{{0, 0, 0, 255}, {200, 200, 200, 255}}},
		{"gray alpha", 2, []byte{10, 255, 90, 128}, [2]color.NRGBA{{10, 10, 10, 255}, {90, 90, 90, 128}}},
		{"rgb", 3, []byte{255, 0, 0, 0, 0, 255}, [2]color.NRGBA{{255, 0, 0, 255}, {0, 0, 255, 255}}},
		{"rgba", 4, []byte{1, 2, 3, 4, 50, 60, 70, 255}, [2]color.NRGBA{{1, 2, 3, 4}, {50, 60, 70, 255}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodePNG(&buf, 2, 1, tt.components, tt.data); err != nil {
				t.Fatalf("EncodePNG failed: %v", err)
			}

			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("Decoding failed: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
				t.Fatalf("Unexpected bounds %v", img.Bounds())
			}
			for x := 0; x < 2; x++ {
				got := color.NRGBAModel.Convert(img.At(x, 0)).(color.NRGBA)
				if got != tt.expected[x] {
					t.Errorf("Pixel %d: expected %v, got %v", x, tt.expected[x], got)
				}
			}
		})
	}
}

func TestEncodePNGErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		components    int
		dataLen       int
		expected      error
	}{
		{"short buffer", 2, 2, 3, 11, ErrBufferSize},
		{"long buffer", 2, 2, 3, 13, ErrBufferSize},
		{"zero width", 0, 2, 3, 0, ErrBufferSize},
		{"zero components", 2, 2, 0, 0, ErrComponents},
		{"five components", 2, 2, 5, 20, ErrComponents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := EncodePNG(&buf, tt.width, tt.height, tt.components, make([]byte, tt.dataLen))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if buf.Len() != 0 {
				t.Error("Nothing should be written on error")
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	pb := NewPixelBuffer(3, 2)
	pb.Set(2, 1, pbWhite)
	if err := WritePNG(path, pb.Width, pb.Height, 3, pb.ToSRGB()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding failed: %v", err)
	}
	if r, g, b, _ := img.At(2, 1).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white at (2,1), got %d %d %d", r>>8, g>>8, b>>8)
	}
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black at (0,0), got %d %d %d", r, g, b)
	}
}

func TestWritePNGFailures(t *testing.T) {
	dir := t.TempDir()

	// Size errors are reported before any file is created
	path := filepath.Join(dir, "bad.png")
	if err := WritePNG(path, 2, 2, 3, make([]byte, 5)); !errors.Is(err, ErrBufferSize) {
		t.Errorf("Expected ErrBufferSize, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("No file should be created for invalid data, stat returned %v", err)
	}

	// I/O errors are wrapped and distinct from validation errors
	missing := filepath.Join(dir, "no-such-dir", "out.png")
	err := WritePNG(missing, 1, 1, 3, []byte{0, 0, 0})
	if err == nil {
		t.Fatal("Expected an error writing into a missing directory")
	}
	if errors.Is(err, ErrBufferSize) || errors.Is(err, ErrComponents) {
		t.Errorf("I/O failure should not look like a validation error: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the underlying not-exist error to be wrapped, got %v", err)
	}
}
