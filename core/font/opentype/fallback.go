package opentype

import (
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	f, _ := GenericFont("sans-serif")
	return f
}

// packagedFont is an embedded font, parsed on first use.
type packagedFont struct {
	once sync.Once
	name string
	data []byte
	font *ScalableFont
}

func (pf *packagedFont) load() *ScalableFont {
	pf.once.Do(func() {
		f, err := ParseOpenTypeFont(pf.data)
		if err != nil {
			panic("cannot load packaged font " + pf.name) // this cannot happen
		}
		f.Fontname = pf.name
		f.Filepath = "internal"
		pf.font = f
	})
	return pf.font
}

var (
	goSans       = &packagedFont{name: "Go Sans", data: goregular.TTF}
	goSansBold   = &packagedFont{name: "Go Sans Bold", data: gobold.TTF}
	goSansItalic = &packagedFont{name: "Go Sans Italic", data: goitalic.TTF}
	goMono       = &packagedFont{name: "Go Mono", data: gomono.TTF}
	lmRoman      = &packagedFont{name: "Latin Modern Roman", data: lmroman10regular.TTF}
)

// genericFamilies maps CSS generic family names and the names of the
// packaged fonts to packaged fonts.
var genericFamilies = map[string]*packagedFont{
	"sans-serif":         goSans,
	"sans":               goSans,
	"go sans":            goSans,
	"go":                 goSans,
	"bold":               goSansBold,
	"go sans bold":       goSansBold,
	"italic":             goSansItalic,
	"go sans italic":     goSansItalic,
	"monospace":          goMono,
	"mono":               goMono,
	"go mono":            goMono,
	"serif":              lmRoman,
	"latin modern roman": lmRoman,
}

// GenericFont returns a packaged font for a generic family name
// ("sans-serif", "serif", "monospace", "bold", "italic") or for the name of
// one of the packaged fonts. Matching ignores case and surrounding space.
func GenericFont(family string) (*ScalableFont, bool) {
	pf, ok := genericFamilies[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		return nil, false
	}
	return pf.load(), true
}

// GenericFamilies lists the names GenericFont knows about.
func GenericFamilies() []string {
	names := make([]string, 0, len(genericFamilies))
	for name := range genericFamilies {
		names = append(names, name)
	}
	return names
}
