package resources

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typecase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const fcListOutput = `
/usr/share/fonts/TTF/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
/usr/share/fonts/TTF/DejaVuSans.ttf: DejaVu Sans:style=Book
/usr/share/fonts/TTF/DejaVuSans-Oblique.ttf: DejaVu Sans:style=Oblique
/usr/share/fonts/TTF/DejaVuSans-BoldOblique.ttf: DejaVu Sans:style=Bold Oblique
/System/Library/Fonts/Helvetica.ttc: Helvetica:style=Regular
/Library/Fonts/Gill Sans MT Italic.ttf: Gill Sans MT,Gill Sans MT Italic:style=Italic

no-colon-in-this-line
`

func TestParseFontConfigList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	descs, ttc := parseFontConfigList(bufio.NewScanner(strings.NewReader(fcListOutput)))
	assert.Equal(t, 1, ttc, "expected Helvetica collection to be skipped")
	require.Len(t, descs, 5)
	assert.Equal(t, "DejaVu Sans", descs[0].Family)
	assert.Equal(t, []string{"bold"}, descs[0].Variants)
	assert.Equal(t, []string{"regular"}, descs[1].Variants)
	assert.Equal(t, []string{"italic"}, descs[2].Variants)
	assert.Equal(t, "/usr/share/fonts/TTF/DejaVuSans-Oblique.ttf", descs[2].Path)
	assert.Equal(t, []string{"700italic"}, descs[3].Variants)
	assert.Equal(t, "Gill Sans MT", descs[4].Family)
	assert.Equal(t, []string{"italic"}, descs[4].Variants)
}

// fakeFontConfig writes a shell script standing in for fc-list, listing
// a single Go Sans font file.
func fakeFontConfig(t *testing.T) (fclist string, fontfile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake fc-list needs a POSIX shell")
	}
	dir := t.TempDir()
	fontfile = filepath.Join(dir, "GoRegular.ttf")
	require.NoError(t, os.WriteFile(fontfile, goregular.TTF, 0644))
	script := "#!/bin/sh\necho '" + fontfile + ": Go Sans:style=Regular'\n"
	fclist = filepath.Join(dir, "fc-list")
	require.NoError(t, os.WriteFile(fclist, []byte(script), 0755))
	return fclist, fontfile
}

func TestFontConfigLocate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	fclist, fontfile := fakeFontConfig(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	conf := testconfig.Conf{
		"fontconfig": fclist,
		"app-key":    "typecase-test",
	}
	fc := FontConfig(conf)
	f, err := fc.Locate("Go Sans")
	require.NoError(t, err)
	assert.Equal(t, fontfile, f.Filepath)
	require.Len(t, fc.Descriptors(), 1)
	//
	_, err = fc.Locate("Go Sans Bold")
	assert.Equal(t, core.EMISSING, core.Code(err), "no bold variant listed")
	_, err = fc.Locate("Go")
	assert.Equal(t, core.EMISSING, core.Code(err), "family names have to match literally")
	//
	uconfdir, err := os.UserConfigDir()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(uconfdir, "typecase-test", "fontlist.txt"))
	assert.NoError(t, err, "expected fc-list output to be cached")
}

func TestFontConfigNotConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	fc := FontConfig(testconfig.Conf{"app-key": "typecase-test"})
	_, err := fc.Locate("DejaVu Sans")
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	fc = FontConfig(testconfig.Conf{"app-key": "typecase-test", "fontconfig": "bin/fc-list"})
	_, err = fc.Locate("DejaVu Sans")
	assert.Equal(t, core.EINVALID, core.Code(err), "relative path to fc-list should be rejected")
	//
	fc = FontConfig(testconfig.Conf{})
	_, err = fc.Locate("DejaVu Sans")
	assert.Equal(t, core.EINVALID, core.Code(err), "app-key is required")
}
