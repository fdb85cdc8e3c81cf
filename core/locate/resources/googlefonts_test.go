package resources

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typecase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const directoryFragm = `{
  "kind": "webfonts#webfontList",
  "items": [
    {
      "kind": "webfonts#webfont",
      "family": "Anonymous Pro",
      "variants": [
        "regular",
        "italic",
        "700",
        "700italic"
      ],
      "subsets": [
        "cyrillic",
        "greek",
        "latin",
        "latin-ext"
      ],
      "version": "v14",
      "lastModified": "2020-09-02",
      "files": {
        "regular": "%[1]s/fonts/AnonymousPro-Regular.ttf",
        "italic": "%[1]s/fonts/AnonymousPro-Italic.ttf",
        "700": "%[1]s/fonts/AnonymousPro-Bold.ttf",
        "700italic": "%[1]s/fonts/AnonymousPro-BoldItalic.ttf"
      },
      "category": "monospace"
    },
    {
      "kind": "webfonts#webfont",
      "family": "Antic",
      "variants": [
        "regular"
      ],
      "subsets": [
        "latin"
      ],
      "version": "v12",
      "lastModified": "2020-09-02",
      "files": {
        "regular": "%[1]s/fonts/Antic-Regular.ttf"
      },
      "category": "sans-serif"
    },
    {
      "kind": "webfonts#webfont",
      "family": "Broken Link",
      "variants": [
        "regular"
      ],
      "version": "v1",
      "files": {
        "regular": "%[1]s/missing/BrokenLink-Regular.ttf"
      }
    }
  ]
}`

type fontService struct {
	*httptest.Server
	downloads atomic.Int32
	apikey    atomic.Value
}

func newFontService(t *testing.T) *fontService {
	t.Helper()
	fs := &fontService{}
	mux := http.NewServeMux()
	mux.HandleFunc("/webfonts", func(w http.ResponseWriter, r *http.Request) {
		fs.apikey.Store(r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, directoryFragm, fs.URL)
	})
	mux.HandleFunc("/fonts/", func(w http.ResponseWriter, r *http.Request) {
		fs.downloads.Add(1)
		w.Write(goregular.TTF)
	})
	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fontService) locator(conf testconfig.Conf) *GoogleFontsLocator {
	g := GoogleFonts(conf)
	g.API = fs.URL + "/webfonts"
	g.Client = fs.Client()
	return g
}

func isolateCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

var googleConf = testconfig.Conf{
	"app-key":        "typecase-test",
	"google-api-key": "test-key",
}

func TestGoogleFindFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	isolateCache(t)
	fs := newFontService(t)
	g := fs.locator(googleConf)
	f, err := g.Locate("Antic")
	require.NoError(t, err)
	assert.Equal(t, "test-key", fs.apikey.Load())
	assert.Equal(t, "Antic-regular-v12.ttf", filepath.Base(f.Filepath))
	assert.Equal(t, int32(1), fs.downloads.Load())
	//
	f, err = g.Locate("Anonymous Pro Bold Italic")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(f.Filepath), "AnonymousPro-700italic"))
	assert.Equal(t, int32(2), fs.downloads.Load())
}

func TestGoogleCachedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	isolateCache(t)
	fs := newFontService(t)
	_, err := fs.locator(googleConf).Locate("Antic")
	require.NoError(t, err)
	f, err := fs.locator(googleConf).Locate("antic")
	require.NoError(t, err)
	assert.Equal(t, int32(1), fs.downloads.Load(), "expected second lookup to hit the cache")
	cachedir, err := CacheDirPath(googleConf, "fonts")
	require.NoError(t, err)
	assert.Equal(t, cachedir, filepath.Dir(f.Filepath))
}

func TestGoogleFontNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	isolateCache(t)
	fs := newFontService(t)
	g := fs.locator(googleConf)
	_, err := g.Locate("Inconsolata")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = g.Locate("Antic Italic")
	assert.Equal(t, core.EMISSING, core.Code(err), "Antic has no italic variant")
	_, err = g.Locate("Broken Link")
	assert.Equal(t, core.ECONNECTION, core.Code(err))
	cachedir, err := CacheDirPath(googleConf, "fonts")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(cachedir, "BrokenLink-regular-v1.ttf"))
	assert.True(t, os.IsNotExist(err), "failed download should not leave a cache file")
	assert.Equal(t, int32(0), fs.downloads.Load())
}

func TestGoogleAPIKeyMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	isolateCache(t)
	t.Setenv("GOOGLE_API_KEY", "")
	fs := newFontService(t)
	_, err := fs.locator(testconfig.Conf{"app-key": "typecase-test"}).Locate("Antic")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Nil(t, fs.apikey.Load(), "directory should not be requested without API key")
	//
	t.Setenv("GOOGLE_API_KEY", "env-key")
	_, err = fs.locator(testconfig.Conf{"app-key": "typecase-test"}).Locate("Antic")
	assert.NoError(t, err)
	assert.Equal(t, "env-key", fs.apikey.Load())
}

func TestGoogleServiceDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()
	g := GoogleFonts(googleConf)
	g.API = srv.URL
	_, err := g.Locate("Antic")
	assert.Equal(t, core.ECONNECTION, core.Code(err))
}

func TestGoogleListFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	fs := newFontService(t)
	g := fs.locator(googleConf)
	list := g.ListFonts("^An")
	require.Len(t, list, 2)
	assert.Equal(t, "Anonymous Pro", list[0].Family)
	assert.Len(t, list[0].Files, 4)
	assert.Empty(t, g.ListFonts("(unbalanced"))
}
