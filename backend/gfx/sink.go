package gfx

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/typecase/core/font"
)

// OutOfBoundsError is returned by an ImageSink for pixels outside of the
// bounds of its destination image.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (%d,%d) is out of image bounds", e.X, e.Y)
}

// ImageSink is a font.Sink drawing into an image. Coverage values are used
// as mask alpha to blend Color over the destination pixel.
//
// Without Clip, the first pixel outside of Dst's bounds stops drawing with an
// *OutOfBoundsError. With Clip set, such pixels are skipped.
type ImageSink struct {
	Dst   draw.Image
	Color color.Color // defaults to black
	Clip  bool
}

var _ font.Sink = (*ImageSink)(nil)

// Emit blends a single pixel.
func (s *ImageSink) Emit(x, y int, coverage float32) error {
	p := image.Pt(x, y)
	if !p.In(s.Dst.Bounds()) {
		if s.Clip {
			return nil
		}
		return &OutOfBoundsError{X: x, Y: y}
	}
	if coverage <= 0 {
		return nil
	}
	if coverage > 1 {
		coverage = 1
	}
	c := s.Color
	if c == nil {
		c = color.Black
	}
	mask := image.NewUniform(color.Alpha16{A: uint16(coverage * 0xffff)})
	r := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
	draw.DrawMask(s.Dst, r, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

// Render draws text with descriptor d into dst, with the top-left corner of
// the text line at origin. It returns the font error, if any, and otherwise
// the error that stopped the sink.
func Render(dst draw.Image, d font.Descriptor, text string, origin image.Point, c color.Color) error {
	sink := &ImageSink{Dst: dst, Color: c}
	sinkErr, err := d.Draw(text, origin, sink)
	if err != nil {
		tracer().Errorf("cannot render %q: %v", text, err)
		return err
	}
	if sinkErr != nil {
		tracer().Infof("rendering of %q stopped: %v", text, sinkErr)
	}
	return sinkErr
}
