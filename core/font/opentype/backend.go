package opentype

import (
	"errors"
	"image"

	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyph is reported if a font cannot produce a glyph for a rune.
var ErrNoGlyph = errors.New("no glyph for rune")

var _ font.Backend = (*ScalableFont)(nil)

// EstimateLayout returns the ink box of text at a given size. The pen starts
// at (0,0) on the baseline, thus glyph parts above the baseline have negative
// y-coordinates. Text without any ink results in an empty box at the origin.
func (f *ScalableFont) EstimateLayout(size float64, text string) (font.BoundingBox, error) {
	tc, err := f.PrepareCase(size)
	if err != nil {
		return font.BoundingBox{}, err
	}
	return tc.LayoutBox(text)
}

// LayoutBox returns the ink box of text, with the pen starting at (0,0) on
// the baseline. Fractional coordinates are rounded outwards.
func (tc *TypeCase) LayoutBox(text string) (font.BoundingBox, error) {
	var ink fixed.Rectangle26_6
	var dot fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot += tc.face.Kern(prev, r)
		}
		bounds, advance, ok := tc.face.GlyphBounds(r)
		if !ok {
			return font.BoundingBox{}, tc.noGlyph(r)
		}
		if !bounds.Empty() {
			bounds.Min.X += dot
			bounds.Max.X += dot
			ink = ink.Union(bounds)
		}
		dot += advance
		prev = r
	}
	if ink.Empty() {
		return font.BoundingBox{}, nil
	}
	return font.Box(ink.Min.X.Floor(), ink.Min.Y.Floor(), ink.Max.X.Ceil(), ink.Max.Y.Ceil()), nil
}

// Draw rasterizes text at a given size, with origin being the top-left
// corner of the line. The baseline is placed at origin.Y plus the font's
// ascent. Every pixel with non-zero coverage is reported to sink, glyph by
// glyph. The first error returned by sink stops drawing and is returned
// unchanged as sinkErr.
func (f *ScalableFont) Draw(origin image.Point, size float64, text string, sink font.Sink) (sinkErr error, err error) {
	tc, err := f.PrepareCase(size)
	if err != nil {
		return nil, err
	}
	return tc.Draw(origin, text, sink)
}

// Draw rasterizes text with origin being the top-left corner of the line.
// See ScalableFont.Draw.
func (tc *TypeCase) Draw(origin image.Point, text string, sink font.Sink) (sinkErr error, err error) {
	ascent := tc.face.Metrics().Ascent
	dot := fixed.Point26_6{
		X: fixed.I(origin.X),
		Y: fixed.I(origin.Y) + ascent,
	}
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += tc.face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := tc.face.Glyph(dot, r)
		if !ok {
			return nil, tc.noGlyph(r)
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a == 0 {
					continue
				}
				if e := sink.Emit(x, y, float32(a)/0xffff); e != nil {
					tracer().Debugf("sink stopped drawing of %q at (%d,%d)", text, x, y)
					return e, nil
				}
			}
		}
		dot.X += advance
		prev = r
	}
	return nil, nil
}

func (tc *TypeCase) noGlyph(r rune) error {
	return core.WrapError(ErrNoGlyph, core.EINVALID, "font %s has no glyph for %q",
		tc.scalableFontParent.Fontname, r)
}
