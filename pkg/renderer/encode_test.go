package renderer

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/df07/go-raytracer-starter/pkg/core"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"tiff", FormatTIFF, false},
		{"tif", FormatTIFF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRasterSink_Clamps(t *testing.T) {
	sink := NewRasterSink()
	if err := sink.Begin(2, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	for _, c := range []core.Vec3{core.NewVec3(-1, 2, 0.5), core.NewVec3(0, 1, 0.25)} {
		if err := sink.WritePixel(c); err != nil {
			t.Fatalf("WritePixel failed: %v", err)
		}
	}

	c := sink.Image().RGBAAt(0, 0)
	if c.R != 0 || c.G != 255 || c.B != 127 || c.A != 255 {
		t.Errorf("Expected clamped {0 255 127 255}, got %v", c)
	}
	c = sink.Image().RGBAAt(1, 0)
	if c.R != 0 || c.G != 255 || c.B != 63 {
		t.Errorf("Expected {0 255 63}, got %v", c)
	}
}

func TestRasterSink_OutOfSequence(t *testing.T) {
	sink := NewRasterSink()
	if err := sink.WritePixel(core.NewVec3(0, 0, 0)); !errors.Is(err, ErrSinkState) {
		t.Errorf("WritePixel before Begin: expected ErrSinkState, got %v", err)
	}
	if sink.Image() != nil {
		t.Errorf("Expected no image before Begin")
	}

	if err := sink.Begin(1, 1); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := sink.WritePixel(core.NewVec3(1, 1, 1)); err != nil {
		t.Fatalf("WritePixel failed: %v", err)
	}
	if err := sink.WritePixel(core.NewVec3(1, 1, 1)); !errors.Is(err, ErrSinkState) {
		t.Errorf("WritePixel past the end: expected ErrSinkState, got %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	sink := NewRasterSink()
	_, err := NewGradient(GradientConfig{Width: 16, Height: 8, Blue: 0.25}, nil).Render(sink)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, sink.Image(), format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			img, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if name != string(format) {
				t.Errorf("Decoded as %q, expected %q", name, format)
			}
			if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
				t.Fatalf("Unexpected bounds %v", img.Bounds())
			}

			// Top-left is pure green, bottom-right pure red
			checkPixel(t, img, 0, 0, 0, 255, 63)
			checkPixel(t, img, 15, 7, 255, 0, 63)
		})
	}
}

func TestEncode_RejectsPPM(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)), FormatPPM)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func checkPixel(t *testing.T, img image.Image, x, y int, r, g, b uint32) {
	t.Helper()
	gotR, gotG, gotB, _ := img.At(x, y).RGBA()
	if gotR>>8 != r || gotG>>8 != g || gotB>>8 != b {
		t.Errorf("Pixel (%d, %d): expected (%d, %d, %d), got (%d, %d, %d)",
			x, y, r, g, b, gotR>>8, gotG>>8, gotB>>8)
	}
}
