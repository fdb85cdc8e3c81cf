package fontregistry

import (
	"strconv"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font"
	"github.com/npillmayer/typecase/core/font/opentype"
	"github.com/npillmayer/typecase/core/locate/resources"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Locator searches for a font by name. Locators return an error if they
// cannot provide a font.
type Locator interface {
	Locate(name string) (*opentype.ScalableFont, error)
}

// LocatorFunc is an adapter to use ordinary functions as Locators.
type LocatorFunc func(name string) (*opentype.ScalableFont, error)

// Locate calls f(name).
func (f LocatorFunc) Locate(name string) (*opentype.ScalableFont, error) {
	return f(name)
}

// Registry is a type for holding information about loaded fonts.
// It is safe for concurrent use.
type Registry struct {
	sync.Mutex
	fonts    *trie.Trie // normalized name -> *opentype.ScalableFont
	locators []Locator
	dpi      float64
}

var _ font.Resolver = (*Registry)(nil)

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts. It locates fonts from the packaged fonts and, if not found
// there, from the fonts installed on the system.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(resources.PackagedFonts(), resources.SystemFonts())
	})
	return globalFontRegistry
}

func init() {
	font.SetDefaultResolver(GlobalRegistry())
}

// NewRegistry creates an empty registry, which will search for fonts with
// the given locators, in order.
func NewRegistry(locators ...Locator) *Registry {
	fr := &Registry{
		fonts:    trie.New(),
		locators: locators,
	}
	return fr
}

// AddLocator appends a locator to the chain of locators.
func (fr *Registry) AddLocator(l Locator) {
	if l == nil {
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fr.locators = append(fr.locators, l)
}

// Configure reads settings from a configuration. Currently this is
// key `font-dpi`, the resolution fonts located after the call will be scaled for.
func (fr *Registry) Configure(conf schuko.Configuration) {
	s := conf.GetString("font-dpi")
	if s == "" {
		return
	}
	dpi, err := strconv.ParseFloat(s, 64)
	if err != nil || dpi <= 0 {
		tracer().Errorf("ignoring invalid configuration font-dpi=%q", s)
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fr.dpi = dpi
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f *opentype.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := NormalizeName(name)
	if key == "" {
		tracer().Errorf("registry cannot store font %s without name", f.Fontname)
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fr.store(key, f)
}

func (fr *Registry) store(key string, f *opentype.ScalableFont) *opentype.ScalableFont {
	if node, ok := fr.fonts.Find(key); ok {
		return node.Meta().(*opentype.ScalableFont)
	}
	if fr.dpi > 0 {
		f = f.WithDPI(fr.dpi)
	}
	tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
	fr.fonts.Add(key, f)
	return f
}

// Lookup returns the font stored for a name, without trying to locate it.
func (fr *Registry) Lookup(name string) (*opentype.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	if node, ok := fr.fonts.Find(NormalizeName(name)); ok {
		return node.Meta().(*opentype.ScalableFont), true
	}
	return nil, false
}

// Resolve returns the font for a typeface name. If the registry does not
// contain it, the locators are asked in order and the first font found is
// stored under name. Fonts are located at most once per name, subsequent
// calls return the same font instance.
func (fr *Registry) Resolve(name string) (font.Backend, error) {
	f, err := fr.resolve(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (fr *Registry) resolve(name string) (*opentype.ScalableFont, error) {
	key := NormalizeName(name)
	if key == "" {
		return nil, core.Error(core.EINVALID, "cannot resolve font without a name")
	}
	tracer().Debugf("registry searches for font %s", key)
	fr.Lock()
	defer fr.Unlock()
	if node, ok := fr.fonts.Find(key); ok {
		return node.Meta().(*opentype.ScalableFont), nil
	}
	var cause error
	for _, l := range fr.locators {
		f, err := l.Locate(name)
		if err == nil && f != nil {
			tracer().Infof("font registry located font %s as %s", name, f.Fontname)
			return fr.store(key, f), nil
		}
		if err != nil {
			tracer().Debugf("locator cannot provide %s: %v", name, err)
			cause = err
		}
	}
	tracer().Infof("registry cannot locate font %s", name)
	return nil, core.WrapError(cause, core.EMISSING, "font not found: %s", name)
}

// Search returns the normalized names of all fonts in the registry starting
// with a given prefix.
func (fr *Registry) Search(prefix string) []string {
	fr.Lock()
	defer fr.Unlock()
	return fr.fonts.PrefixSearch(NormalizeName(prefix))
}

// LogFontList is a helper function to dump the list of known fonts in a
// registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.fonts.Keys() {
		if node, ok := fr.fonts.Find(k); ok {
			f := node.Meta().(*opentype.ScalableFont)
			tracer().Infof("font [%s] = %v (%s)", k, f.Fontname, f.Filepath)
		}
	}
	tracer().Infof("------------------------")
}

// NormalizeName creates the registry key for a typeface name: case folded,
// in Unicode normal form C, with runs of white space collapsed to a single
// blank.
func NormalizeName(name string) string {
	name = norm.NFC.String(name)
	name = strings.Join(strings.Fields(name), " ")
	return cases.Fold().String(name)
}
