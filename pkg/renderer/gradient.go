package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-raytracer-starter/pkg/core"
)

// ErrInvalidDimensions is returned when width or height is not positive
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// GradientConfig describes the test-pattern image
type GradientConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	Blue   float32 // Constant blue channel
}

// DefaultGradientConfig returns the standard 256x256 test pattern
func DefaultGradientConfig() GradientConfig {
	return GradientConfig{
		Width:  256,
		Height: 256,
		Blue:   0.25,
	}
}

// Gradient renders a color ramp: red grows left to right, green grows
// bottom to top, blue is constant
type Gradient struct {
	config GradientConfig
	logger core.Logger
}

// NewGradient creates a gradient renderer. A nil logger discards progress output.
func NewGradient(config GradientConfig, logger core.Logger) *Gradient {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Gradient{config: config, logger: logger}
}

// Config returns the pattern configuration
func (g *Gradient) Config() GradientConfig {
	return g.config
}

// PixelColor returns the color of data row i, column j. Row 0 is the bottom of the image.
func (g *Gradient) PixelColor(i, j int) core.Vec3 {
	return core.NewVec3(
		ramp(j, g.config.Width),
		ramp(i, g.config.Height),
		g.config.Blue,
	)
}

// ramp maps 0..n-1 onto [0,1]; a single-pixel axis stays at 0
func ramp(k, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(k) / float32(n-1)
}

// Render streams every pixel to sink, top row first. Progress is reported to
// the logger after each row. The first sink error aborts the render.
func (g *Gradient) Render(sink PixelSink) (RenderStats, error) {
	width, height := g.config.Width, g.config.Height
	stats := RenderStats{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return stats, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	startTime := time.Now()
	if err := sink.Begin(width, height); err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	for i := height - 1; i >= 0; i-- {
		for j := 0; j < width; j++ {
			if err := sink.WritePixel(g.PixelColor(i, j)); err != nil {
				return stats, fmt.Errorf("failed to write pixel (%d, %d): %w", j, i, err)
			}
			stats.TotalPixels++
		}
		g.logger.Printf("\rScanlines remaining: %d ", i)
	}

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("failed to finish image: %w", err)
	}
	g.logger.Printf("\nDone.\n")

	stats.Elapsed = time.Since(startTime)
	return stats, nil
}
