/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "descriptor" is a typeface name paired with a size, together with the
outcome of resolving that name to a glyph backend. Descriptors are values:
they are created once, may be copied freely, and resizing one yields a new
descriptor sharing the backend of the original.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Resolution of a typeface name happens exactly once, when a descriptor is
created. If it fails, the failure is stored in the descriptor and every
later query returns it:

    d := font.New("Go Sans", 12)
    w, h, err := d.BoxSize("Hello")   // err is the resolution error, if any

Drawing reports two independent kinds of failure. The last return value is
the font-layer error (resolution or backend), the first one is whatever the
caller-supplied Sink returned, passed through unchanged:

    sinkErr, err := d.Draw("Hello", image.Pt(10, 10), sink)

Package font does not know about any concrete backend. Resolvers are
installed with SetDefaultResolver, or passed explicitly to NewWith.
Importing package fontregistry installs a registry of OpenType fonts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typecase.font'
func tracer() tracing.Trace {
	return tracing.Select("typecase.font")
}
