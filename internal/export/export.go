// Package export turns an engine snapshot into a file: optional scaling,
// an optional caption strip with the view parameters, and PNG or JPEG
// encoding.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Options controls Render.
type Options struct {
	// Width and Height are the output size. Zero keeps the source size;
	// setting only one keeps the aspect ratio.
	Width, Height int

	// Caption is drawn along the bottom edge when non-empty.
	Caption string

	// CaptionSize is the caption font size in points. Zero selects 12.
	CaptionSize float64
}

// Render scales src to the requested size and draws the caption.
// src is never modified.
func Render(src *image.RGBA, opts Options) (*image.RGBA, error) {
	w, h := outputSize(src.Bounds(), opts.Width, opts.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("export: invalid output size %dx%d", w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Size() == dst.Bounds().Size() {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}

	if opts.Caption != "" {
		if err := drawCaption(dst, opts.Caption, opts.CaptionSize); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// outputSize resolves the requested size against the source bounds.
func outputSize(b image.Rectangle, w, h int) (int, int) {
	switch {
	case w == 0 && h == 0:
		return b.Dx(), b.Dy()
	case h == 0:
		return w, w * b.Dy() / b.Dx()
	case w == 0:
		return h * b.Dx() / b.Dy(), h
	}
	return w, h
}

// ErrUnsupportedFormat is returned by Save for an unknown file extension.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// jpegQuality is the quality Save uses for .jpg and .jpeg files.
const jpegQuality = 92

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// WriteJPEG encodes img as JPEG. Transparent pixels lose their alpha.
func WriteJPEG(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("export: encode jpeg: %w", err)
	}
	return nil
}

// Save writes img to path, choosing PNG or JPEG from the extension.
func Save(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = WritePNG
	case ".jpg", ".jpeg":
		encode = WriteJPEG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := encode(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}
