/*
Package opentype is a glyph backend for OpenType fonts.

A ScalableFont wraps a parsed font file and implements font.Backend: it
measures text and rasterizes it to antialiased pixel coverage. Scaling a
ScalableFont to a size yields a TypeCase, which is cheap to create. The
parsed font is never modified, which is why ScalableFonts may be shared by
any number of descriptors and goroutines.

Kerning is applied as far as the font's kern table reports it. No shaping
is done: one rune is one glyph.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package opentype

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typecase/core"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'typecase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typecase.fonts")
}

// DefaultDPI is the resolution fonts are scaled for if not told otherwise.
// At 72 DPI a font size is a size in pixels.
const DefaultDPI = 72

// ScalableFont is a parsed font, i.e. a variant of a typeface with a
// certain weight, slant, etc. It is not yet scaled to a size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, if loaded from a file
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container, read-only after parsing
	dpi      float64
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	tracer().Debugf("loaded font %s from %s", f.Fontname, fontfile)
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse OpenType font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// WithDPI returns a copy of f scaling for a given resolution.
// The copy shares the parsed font data with f.
func (f *ScalableFont) WithDPI(dpi float64) *ScalableFont {
	c := *f
	c.dpi = dpi
	return &c
}

// DPI returns the resolution f scales for.
func (f *ScalableFont) DPI() float64 {
	if f.dpi <= 0 {
		return DefaultDPI
	}
	return f.dpi
}

// TypeCase is a scalable font in a certain size.
//
// A TypeCase is not safe for concurrent use; create one per goroutine.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// PrepareCase scales a font to a size. Sizes have to be positive.
func (f *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	if !(fontsize > 0) {
		return nil, core.Error(core.EINVALID, "font size must be positive, is %g", fontsize)
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     f.DPI(),
		Hinting: xfont.HintingNone,
	}
	face, err := opentype.NewFace(f.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot scale font %s to %g", f.Fontname, fontsize)
	}
	return &TypeCase{
		scalableFontParent: f,
		face:               face,
		size:               fontsize,
	}, nil
}

// ScalableFontParent returns the font tc has been scaled from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the size tc has been scaled to.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Metrics returns the font-wide metrics at tc's size.
func (tc *TypeCase) Metrics() xfont.Metrics {
	return tc.face.Metrics()
}
