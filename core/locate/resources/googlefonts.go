package resources

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font/opentype"
	xfont "golang.org/x/image/font"
)

// GoogleFontInfo is an entry of the Google Fonts directory.
type GoogleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []GoogleFontInfo `json:"items"`
}

// GoogleFontsAPI is the endpoint of the Google Fonts developer API.
const GoogleFontsAPI = `https://www.googleapis.com/webfonts/v1/webfonts`

// GoogleFontsLocator searches for fonts in the Google Fonts directory and
// downloads them to the user's cache directory, in a sub-folder named after
// configuration key `app-key`. Fonts already present in the cache are not
// downloaded again.
//
// An API-key has to be set in the configuration as `google-api-key`, or in
// the environment as GOOGLE_API_KEY; please refer to
// https://developers.google.com/fonts/docs/developer_api
type GoogleFontsLocator struct {
	API    string       // directory endpoint, defaults to GoogleFontsAPI
	Client *http.Client // defaults to http.DefaultClient
	conf   schuko.Configuration
	//
	loading   sync.Once
	directory googleFontsList
	loadErr   error
}

// GoogleFonts creates a locator for fonts of the Google Fonts service.
func GoogleFonts(conf schuko.Configuration) *GoogleFontsLocator {
	return &GoogleFontsLocator{
		API:    GoogleFontsAPI,
		Client: http.DefaultClient,
		conf:   conf,
	}
}

// Locate finds a font family in the Google Fonts directory, selects the
// variant best matching the style and weight indicators of name, and loads
// the font file, downloading it if necessary.
func (g *GoogleFontsLocator) Locate(name string) (*opentype.ScalableFont, error) {
	family, style, weight := SplitStyle(name)
	fi, variant, err := g.FindFont(family, style, weight)
	if err != nil {
		return nil, err
	}
	fpath, err := g.CacheFont(fi, variant)
	if err != nil {
		return nil, err
	}
	return opentype.LoadOpenTypeFont(fpath)
}

// FindFont searches the directory for a font family (matched literally,
// ignoring case) and returns the best matching variant.
func (g *GoogleFontsLocator) FindFont(family string, style xfont.Style, weight xfont.Weight) (
	GoogleFontInfo, string, error) {
	//
	if err := g.setupDirectory(); err != nil {
		return GoogleFontInfo{}, "", err
	}
	descs := make([]FileDescriptor, len(g.directory.Items))
	for i, fi := range g.directory.Items {
		descs[i] = FileDescriptor{Family: fi.Family, Variants: fi.Variants}
	}
	desc, variant, confidence := ClosestMatch(descs, exactFamily(family), style, weight)
	tracer().Debugf("closest Google font match confidence for %s|%s = %d", desc.Family, variant, confidence)
	if confidence <= LowConfidence {
		return GoogleFontInfo{}, "", NotFound(NormalizeFontname(family, style, weight))
	}
	for _, fi := range g.directory.Items {
		if fi.Family == desc.Family {
			return fi, variant, nil
		}
	}
	return GoogleFontInfo{}, "", NotFound(family) // cannot happen
}

// CacheFont returns the path of a font variant in the cache directory,
// downloading the font file if it is not cached yet.
func (g *GoogleFontsLocator) CacheFont(fi GoogleFontInfo, variant string) (string, error) {
	fileurl, ok := fi.Files[variant]
	if !ok {
		return "", core.Error(core.EMISSING, "font %s has no variant %s", fi.Family, variant)
	}
	cachedir, err := CacheDirPath(g.conf, "fonts")
	if err != nil {
		return "", err
	}
	ext := path.Ext(fileurl)
	if ext == "" || strings.ContainsAny(ext, "?&/") {
		ext = ".ttf"
	}
	fname := strings.ReplaceAll(fi.Family, " ", "") + "-" + variant
	if fi.Version != "" {
		fname += "-" + fi.Version
	}
	fpath := filepath.Join(cachedir, fname+ext)
	if _, err := os.Stat(fpath); err == nil {
		tracer().Debugf("font %s %s found in cache", fi.Family, variant)
		return fpath, nil
	}
	tracer().Infof("downloading font %s %s", fi.Family, variant)
	if err = downloadFile(g.client(), fpath, fileurl); err != nil {
		return "", err
	}
	return fpath, nil
}

// ListFonts produces a listing of available fonts from the Google webfont
// service to the trace (log-level Info), with font-family names matching a
// given pattern.
//
// If not aleady done, the list of fonts will be downloaded from Google.
func (g *GoogleFontsLocator) ListFonts(pattern string) []GoogleFontInfo {
	if err := g.setupDirectory(); err != nil {
		tracer().Errorf("%s", core.UserMessage(err))
		return nil
	}
	return listGoogleFonts(g.directory, pattern)
}

func (g *GoogleFontsLocator) client() *http.Client {
	if g.Client == nil {
		return http.DefaultClient
	}
	return g.Client
}

func (g *GoogleFontsLocator) setupDirectory() error {
	g.loading.Do(func() {
		g.loadErr = g.loadDirectory()
	})
	return g.loadErr
}

func (g *GoogleFontsLocator) loadDirectory() error {
	apikey := g.conf.GetString("google-api-key")
	if apikey == "" {
		apikey = os.Getenv("GOOGLE_API_KEY")
	}
	if apikey == "" {
		tracer().Errorf("Google API key not set")
		return core.Error(core.EMISSING,
			`Google Fonts API-key must be set in configuration or as GOOGLE_API_KEY in environment;
      please refer to https://developers.google.com/fonts/docs/developer_api`)
	}
	endpoint, err := url.Parse(g.API)
	if err != nil || g.API == "" {
		return core.WrapError(err, core.EINVALID, "invalid Google Fonts API endpoint %q", g.API)
	}
	values := url.Values{
		"sort": []string{"alpha"},
		"key":  []string{apikey},
	}
	endpoint.RawQuery = values.Encode()
	resp, err := g.client().Get(endpoint.String())
	if err != nil {
		tracer().Errorf("Google Fonts API request not OK: %s", err.Error())
		return core.WrapError(err, core.ECONNECTION,
			"could not get fonts-directory from Google font service")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		tracer().Errorf("Google Fonts API request not OK: %v", resp.Status)
		return core.Error(core.ECONNECTION,
			"could not get fonts-directory from Google font service: %v", resp.Status)
	}
	if err = json.NewDecoder(resp.Body).Decode(&g.directory); err != nil {
		return core.WrapError(err, core.EINVALID,
			"could not decode fonts-list from Google font service")
	}
	tracer().Infof("Google Fonts directory has %d entries", len(g.directory.Items))
	return nil
}

func listGoogleFonts(list googleFontsList, pattern string) []GoogleFontInfo {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot list Google fonts: invalid pattern: %v", err)
		return nil
	}
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	var matching []GoogleFontInfo
	tracer().Infof("%d fonts in list", len(list.Items))
	tracer().Infof("======================================")
	for i, finfo := range list.Items {
		if !r.MatchString(finfo.Family) {
			continue
		}
		matching = append(matching, finfo)
		tracer().Infof("[%4d] %-20s: %s", i, finfo.Family, finfo.Version)
		tracer().Infof("       subsets: %v", finfo.Subsets)
		for k, v := range finfo.Files {
			tracer().Infof("       - %-18s: %s", k, path.Ext(v))
		}
	}
	return matching
}
