package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/df07/go-raytracer-starter/pkg/core"
	"github.com/df07/go-raytracer-starter/pkg/ppm"
)

// PixelSink consumes pixels in emission order: top row first, left to right
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(c core.Vec3) error
	End() error
}

// PPMSink streams pixels as plain-text PPM
type PPMSink struct {
	writer *ppm.Writer
}

// NewPPMSink creates a sink writing P3 data to w
func NewPPMSink(w io.Writer) *PPMSink {
	return &PPMSink{writer: ppm.NewWriter(w)}
}

func (s *PPMSink) Begin(width, height int) error {
	return s.writer.WriteHeader(width, height)
}

func (s *PPMSink) WritePixel(c core.Vec3) error {
	return s.writer.WriteColor(c)
}

func (s *PPMSink) End() error {
	return s.writer.Flush()
}

// ErrSinkState is returned when pixels arrive before Begin or past the end of the image
var ErrSinkState = errors.New("raster sink out of sequence")

// RasterSink collects pixels into an RGBA image. Samples are clamped to
// [0,255] since 8-bit channels cannot hold anything else.
type RasterSink struct {
	img  *image.RGBA
	next int
}

// NewRasterSink creates an empty raster sink
func NewRasterSink() *RasterSink {
	return &RasterSink{}
}

func (s *RasterSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

func (s *RasterSink) WritePixel(c core.Vec3) error {
	if s.img == nil {
		return fmt.Errorf("%w: WritePixel before Begin", ErrSinkState)
	}
	width, height := s.img.Rect.Dx(), s.img.Rect.Dy()
	if s.next >= width*height {
		return fmt.Errorf("%w: more than %d pixels", ErrSinkState, width*height)
	}
	x, y := s.next%width, s.next/width
	s.img.SetRGBA(x, y, color.RGBA{
		R: clampChannel(c.R()),
		G: clampChannel(c.G()),
		B: clampChannel(c.B()),
		A: 255,
	})
	s.next++
	return nil
}

func (s *RasterSink) End() error {
	return nil
}

// Image returns the collected image, nil before Begin
func (s *RasterSink) Image() *image.RGBA {
	return s.img
}

func clampChannel(c float32) uint8 {
	return uint8(max(0, min(ppm.MaxValue, ppm.ChannelValue(c))))
}
