package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-raytracer-starter/pkg/core"
	"github.com/df07/go-raytracer-starter/pkg/renderer"
)

// options holds the parsed command line
type options struct {
	config renderer.GradientConfig
	output string
	format renderer.Format
	check  bool
	quiet  bool
	help   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseOptions reads flags; defaults reproduce the 256x256 PPM test pattern on stdout
func parseOptions(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	defaults := renderer.DefaultGradientConfig()
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Gradient test pattern")
		fmt.Fprintln(stderr, "Usage: gradient [options] > image.ppm")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	width := fs.Int("width", defaults.Width, "Image width in pixels")
	height := fs.Int("height", defaults.Height, "Image height in pixels")
	output := fs.String("output", "-", "Output file, '-' for stdout")
	format := fs.String("format", string(renderer.FormatPPM), "Output format: ppm, png, bmp or tiff")
	check := fs.Bool("check", false, "Read the output file back and compare it with the pattern")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	f, err := renderer.ParseFormat(*format)
	if err != nil {
		return nil, fs, err
	}
	if *check && *output == "-" {
		return nil, fs, errors.New("-check needs -output to name a file")
	}

	config := defaults
	config.Width = *width
	config.Height = *height

	return &options{
		config: config,
		output: *output,
		format: f,
		check:  *check,
		quiet:  *quiet,
		help:   *help,
	}, fs, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		// -h: the flag set has already printed usage
		return nil
	}
	if err != nil {
		return err
	}

	if opts.help {
		fs.Usage()
		return nil
	}

	var logger core.Logger = renderer.NewLogger(stderr)
	if opts.quiet {
		logger = renderer.NopLogger{}
	}

	gradient := renderer.NewGradient(opts.config, logger)

	if opts.output == "-" {
		return writeImage(stdout, gradient, opts.format, logger)
	}

	if err := writeFile(opts.output, gradient, opts.format, logger); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.output)

	if opts.check {
		if err := checkImage(opts.output, gradient, opts.format); err != nil {
			return err
		}
		logger.Printf("Check passed: %s matches the pattern\n", opts.output)
	}
	return nil
}

// createOutput opens the -output destination
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeFile renders into path; a failed close counts as a failed write
func writeFile(path string, gradient *renderer.Gradient, format renderer.Format, logger core.Logger) (err error) {
	file, err := createOutput(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()
	return writeImage(file, gradient, format, logger)
}

func writeImage(out io.Writer, gradient *renderer.Gradient, format renderer.Format, logger core.Logger) error {
	if !format.IsRaster() {
		stats, err := gradient.Render(renderer.NewPPMSink(out))
		if err != nil {
			return err
		}
		logger.Printf("Render completed in %v (%d pixels)\n", stats.Elapsed, stats.TotalPixels)
		return nil
	}

	sink := renderer.NewRasterSink()
	stats, err := gradient.Render(sink)
	if err != nil {
		return err
	}
	if err := renderer.Encode(out, sink.Image(), format); err != nil {
		return err
	}
	logger.Printf("Render completed in %v (%d pixels)\n", stats.Elapsed, stats.TotalPixels)
	return nil
}
