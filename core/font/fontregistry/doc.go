/*
Package fontregistry manages a registry for loaded fonts.

A Registry resolves typeface names to OpenType fonts and implements
font.Resolver. Names are normalized (case folded, white space collapsed)
and every font is located only once: later requests for the same name are
served from the registry. Fonts the registry does not know yet are searched
by a chain of locators, e.g. the packaged fonts or the fonts installed on
the system (see package resources).

Importing this package installs the global registry as default resolver
for package font:

    import _ "github.com/npillmayer/typecase/core/font/fontregistry"

    d := font.New("serif", 12)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typecase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typecase.fonts")
}
