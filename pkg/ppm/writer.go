// Package ppm reads and writes the plain-text (P3) variant of the
// portable pixmap format.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chewxy/math32"

	"github.com/df07/go-raytracer-starter/pkg/core"
)

// MaxValue is the channel maximum written to every header
const MaxValue = 255

// ChannelValue maps a [0,1] channel to an integer sample as floor(255.999*c).
// Inputs outside [0,1] are not clamped.
func ChannelValue(c float32) int {
	return int(math32.Floor(255.999 * c))
}

// Writer emits a P3 image one pixel per line
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a Writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic, dimensions, max value and a blank separator line
func (pw *Writer) WriteHeader(width, height int) error {
	return pw.printf("P3\n%d %d\n%d\n\n", width, height, MaxValue)
}

// WriteColor writes one pixel as three space-separated samples
func (pw *Writer) WriteColor(c core.Vec3) error {
	return pw.printf("%d %d %d\n", ChannelValue(c.R()), ChannelValue(c.G()), ChannelValue(c.B()))
}

// Flush writes any buffered data to the underlying writer
func (pw *Writer) Flush() error {
	if pw.err != nil {
		return pw.err
	}
	if err := pw.w.Flush(); err != nil {
		pw.err = fmt.Errorf("failed to flush ppm data: %w", err)
	}
	return pw.err
}

func (pw *Writer) printf(format string, args ...interface{}) error {
	if pw.err != nil {
		return pw.err
	}
	if _, err := fmt.Fprintf(pw.w, format, args...); err != nil {
		pw.err = fmt.Errorf("failed to write ppm data: %w", err)
	}
	return pw.err
}
