/*
Package gfx renders text of a font descriptor into raster images.

An ImageSink receives the per-pixel coverage a font backend produces and
blends a uniform color over the pixels of a draw.Image:

    img := image.NewRGBA(image.Rect(0, 0, 200, 40))
    sink := &gfx.ImageSink{Dst: img, Color: color.Black}
    sinkErr, err := font.New("serif", 24).Draw("Hello", image.Point{}, sink)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typecase.gfx'
func tracer() tracing.Trace {
	return tracing.Select("typecase.gfx")
}
