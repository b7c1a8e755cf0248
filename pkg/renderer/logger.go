package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-raytracer-starter/pkg/core"
)

// DefaultLogger implements core.Logger by writing to a diagnostic stream,
// kept apart from the image data stream
type DefaultLogger struct {
	out io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewLogger creates a logger writing to out, usually os.Stderr
func NewLogger(out io.Writer) core.Logger {
	return &DefaultLogger{out: out}
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
