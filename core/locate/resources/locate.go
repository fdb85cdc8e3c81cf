package resources

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font/opentype"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

// FontLocator is a function locating a font by name.
type FontLocator func(name string) (*opentype.ScalableFont, error)

// Locate calls loc(name).
func (loc FontLocator) Locate(name string) (*opentype.ScalableFont, error) {
	return loc(name)
}

// --- Packaged fonts --------------------------------------------------------

// PackagedFonts locates fonts compiled into the application. These are the
// generic families "sans-serif", "serif" and "monospace", as well as
// "bold" and "italic" variants of the sans-serif font.
func PackagedFonts() FontLocator {
	return func(name string) (*opentype.ScalableFont, error) {
		if f, ok := opentype.GenericFont(name); ok {
			tracer().Debugf("%s is a packaged font", name)
			return f, nil
		}
		return nil, NotFound(name)
	}
}

// --- System fonts ----------------------------------------------------------

// SystemFonts locates font files in the platform specific font directories.
// Names may be given as file names ("DejaVuSans-Bold.ttf"), as absolute
// paths, or as typeface names, which will be tried with and without blanks
// ("DejaVu Sans" ⇒ "DejaVuSans", "DejaVu-Sans").
//
// Font collections (*.ttc) are not supported.
func SystemFonts() FontLocator {
	return func(name string) (*opentype.ScalableFont, error) {
		for _, candidate := range systemFontCandidates(name) {
			fpath, err := findfont.Find(candidate)
			if err != nil || fpath == "" {
				continue
			}
			switch strings.ToLower(filepath.Ext(fpath)) {
			case ".ttf", ".otf":
			default:
				tracer().Infof("skipping system font %s: unsupported format", fpath)
				continue
			}
			tracer().Debugf("%s is a system font: %s", name, fpath)
			return opentype.LoadOpenTypeFont(fpath)
		}
		return nil, NotFound(name)
	}
}

func systemFontCandidates(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	candidates := []string{name}
	if strings.Contains(name, " ") {
		candidates = append(candidates,
			strings.ReplaceAll(name, " ", ""),
			strings.ReplaceAll(name, " ", "-"))
	}
	return candidates
}
