package main

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-starter/pkg/core"
	"github.com/df07/go-raytracer-starter/pkg/loaders"
	"github.com/df07/go-raytracer-starter/pkg/ppm"
	"github.com/df07/go-raytracer-starter/pkg/renderer"
)

// errCheckFailed is returned when a written image does not match the pattern
var errCheckFailed = errors.New("image check failed")

// checkImage decodes path and compares every pixel with the gradient, after
// quantizing the expected color the same way the writer does
func checkImage(path string, gradient *renderer.Gradient, format renderer.Format) error {
	var data *loaders.ImageData
	var err error
	if format.IsRaster() {
		data, err = loaders.LoadImage(path)
	} else {
		data, err = loaders.LoadPPM(path)
	}
	if err != nil {
		return err
	}

	config := gradient.Config()
	if data.Width != config.Width || data.Height != config.Height {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d",
			errCheckFailed, config.Width, config.Height, data.Width, data.Height)
	}

	const tolerance = 0.5 / ppm.MaxValue
	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			// Row 0 of the file is the last data row emitted first
			expected := quantize(gradient.PixelColor(data.Height-1-y, x), format.IsRaster())
			if got := data.At(x, y); !got.ApproxEquals(expected, tolerance) {
				return fmt.Errorf("%w: pixel (%d, %d) expected %v, got %v", errCheckFailed, x, y, expected, got)
			}
		}
	}
	return nil
}

func quantize(c core.Vec3, clamp bool) core.Vec3 {
	sample := func(v float32) float32 {
		n := ppm.ChannelValue(v)
		if clamp {
			n = max(0, min(ppm.MaxValue, n))
		}
		return float32(n) / ppm.MaxValue
	}
	return core.NewVec3(sample(c.R()), sample(c.G()), sample(c.B()))
}
