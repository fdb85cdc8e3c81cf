/*
Package resources locates fonts for an application.

Fonts are searched for by name. There are several places to look for them,
each one covered by a locator:

   PackagedFonts()   fonts compiled into the binary (Go fonts, Latin Modern)
   SystemFonts()     font files installed on the system
   FontConfig(conf)  fonts known to fontconfig, via its fc-list binary
   GoogleFonts(conf) fonts from the Google Fonts service, downloaded on demand

Locators are plugged into a font registry (see package fontregistry), which
will ask them in order.

Names may carry style and weight indicators ("Gill Sans Bold Italic"),
which locators searching font directories use to select a font variant.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'typecase.resources'.
func tracer() tracing.Trace {
	return tracing.Select("typecase.resources")
}
