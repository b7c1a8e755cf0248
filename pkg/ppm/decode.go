package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when input is not well-formed P3 data
var ErrInvalidFormat = errors.New("invalid ppm data")

// Image is a decoded P3 image with raw integer samples in row-major order
type Image struct {
	Width  int
	Height int
	MaxVal int
	Pixels [][3]int
}

// Decode parses a P3 image. Comments starting with '#' run to the end of the line.
func Decode(r io.Reader) (*Image, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 || tokens[0] != "P3" {
		return nil, fmt.Errorf("%w: missing P3 magic", ErrInvalidFormat)
	}
	if len(tokens) < 4 {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidFormat)
	}

	header := make([]int, 3)
	for i := range header {
		n, err := strconv.Atoi(tokens[i+1])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: bad header field %q", ErrInvalidFormat, tokens[i+1])
		}
		header[i] = n
	}
	img := &Image{Width: header[0], Height: header[1], MaxVal: header[2]}
	if img.Width > math.MaxInt/img.Height/3 {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrInvalidFormat, img.Width, img.Height)
	}

	samples := tokens[4:]
	expected := img.Width * img.Height * 3
	if len(samples) != expected {
		return nil, fmt.Errorf("%w: expected %d samples, got %d", ErrInvalidFormat, expected, len(samples))
	}

	img.Pixels = make([][3]int, img.Width*img.Height)
	for i, s := range samples {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: bad sample %q", ErrInvalidFormat, s)
		}
		img.Pixels[i/3][i%3] = n
	}
	return img, nil
}

// At returns the samples of the pixel at column x, row y
func (img *Image) At(x, y int) [3]int {
	return img.Pixels[y*img.Width+x]
}

func tokenize(r io.Reader) ([]string, error) {
	var tokens []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read ppm data: %w", err)
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
		if err == io.EOF {
			return tokens, nil
		}
	}
}
