package export

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultCaptionSize = 12

// captionBackground is the translucent strip behind the caption text.
var captionBackground = color.NRGBA{A: 160}

// goRegular parses the embedded Go Regular font once.
var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: failed to parse font: %w", err)
	}
	return f, nil
})

// drawCaption draws text on a dark strip along the bottom of dst.
func drawCaption(dst *image.RGBA, text string, size float64) error {
	if size <= 0 {
		size = defaultCaptionSize
	}
	f, err := goRegular()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("export: failed to create face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	pad := m.Height.Ceil() / 4
	strip := image.Rect(
		dst.Bounds().Min.X,
		dst.Bounds().Max.Y-m.Height.Ceil()-2*pad,
		dst.Bounds().Max.X,
		dst.Bounds().Max.Y,
	).Intersect(dst.Bounds())
	draw.Draw(dst, strip, image.NewUniform(captionBackground), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(strip.Min.X+pad, strip.Min.Y+pad+m.Ascent.Ceil()),
	}
	d.DrawString(text)
	return nil
}

// Info describes a rendered view for captions and summaries.
type Info struct {
	Family string
	Center complex128
	Zoom   float64
	Budget int
	Width  int
	Height int
}

// Caption formats info as a one-line caption, using the number conventions
// of tag.
func (i Info) Caption(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%s  center %.6f%+.6fi  zoom %.1f  budget %d",
		i.Family, real(i.Center), imag(i.Center), i.Zoom, i.Budget)
}

// FormatCount formats n with the digit grouping of tag.
func FormatCount(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}
