package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Number of pixels written to the sink
	Elapsed     time.Duration // Wall time spent in Render
}
