package resources

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font/opentype"
)

// FontConfigLocator searches for locally installed fonts using the fontconfig
// system (https://www.freedesktop.org/wiki/Software/fontconfig/).
//
// fontconfig has to be configured in the application configuration by
// setting key `fontconfig` to the absolute path of the 'fc-list' binary.
// The locator will copy the output of fc-list to the user's config
// directory, in a sub-folder named after configuration key `app-key`, once.
// Subsequent searches use the cached entries.
//
// We call the binary instead of using the C library because of possible version
// issues.
type FontConfigLocator struct {
	conf        schuko.Configuration
	loading     sync.Once
	descriptors []FileDescriptor
	loadErr     error
}

// FontConfig creates a locator for fonts known to fontconfig.
func FontConfig(conf schuko.Configuration) *FontConfigLocator {
	return &FontConfigLocator{conf: conf}
}

// Locate searches for a font variant, given a family name with optional
// style and weight indicators, e.g. "DejaVu Sans Bold".
func (fc *FontConfigLocator) Locate(name string) (*opentype.ScalableFont, error) {
	fc.loading.Do(func() {
		fc.descriptors, fc.loadErr = fc.loadFontConfigList()
		tracer().Infof("loaded fontconfig list with %d entries", len(fc.descriptors))
	})
	if fc.loadErr != nil {
		return nil, fc.loadErr
	}
	family, style, weight := SplitStyle(name)
	desc, variant, confidence := ClosestMatch(fc.descriptors, exactFamily(family), style, weight)
	tracer().Debugf("closest fontconfig match confidence for %s|%s = %d", desc.Family, variant, confidence)
	if confidence <= LowConfidence {
		return nil, NotFound(name)
	}
	return opentype.LoadOpenTypeFont(desc.Path)
}

// Descriptors returns the font descriptors read from the fontconfig list.
// It is empty before the first call to Locate.
func (fc *FontConfigLocator) Descriptors() []FileDescriptor {
	return fc.descriptors
}

func (fc *FontConfigLocator) findFontConfigBinary() (string, error) {
	fcpath := fc.conf.GetString("fontconfig")
	if fcpath == "" {
		tracer().Infof("fontconfig not configured: key 'fontconfig' should point location of 'fc-list' binary")
		return "", core.Error(core.EMISSING, "fontconfig not configured")
	}
	if !filepath.IsAbs(fcpath) {
		return "", core.Error(core.EINVALID, "fontconfig binary fc-list must point to absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	return fcpath, nil
}

// cacheFontConfigList returns the path of the cached fc-list output, creating
// it if it does not exist or if update is set.
func (fc *FontConfigLocator) cacheFontConfigList(update bool) (string, error) {
	appkey := fc.conf.GetString("app-key")
	tracer().Debugf("config[app-key] = %s", appkey)
	if appkey == "" {
		return "", core.Error(core.EINVALID, "application key is not set")
	}
	uconfdir, err := os.UserConfigDir()
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "user config directory not set")
	}
	dir := filepath.Join(uconfdir, appkey)
	fcListFilename := filepath.Join(dir, "fontlist.txt")
	if _, err := os.Stat(fcListFilename); err == nil && !update {
		return fcListFilename, nil // fontlist already exists
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", core.WrapError(err, core.EINVALID,
			"user configuration path cannot be created: %s", dir)
	}
	fcpath, err := fc.findFontConfigBinary()
	if err != nil {
		return "", err
	}
	fontlistFile, err := os.Create(fcListFilename)
	if err == nil {
		defer fontlistFile.Close()
		fccmd := exec.Command(fcpath)
		fccmd.Stdout = fontlistFile
		err = fccmd.Run()
	}
	if err != nil {
		os.Remove(fcListFilename)
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig output file cannot be created: %s", fcListFilename)
	}
	return fcListFilename, nil
}

func (fc *FontConfigLocator) loadFontConfigList() ([]FileDescriptor, error) {
	fclist, err := fc.cacheFontConfigList(false)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fclist)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID,
			"fontconfig font list cannot be opened: %s", fclist)
	}
	defer f.Close()
	descs, ttc := parseFontConfigList(bufio.NewScanner(f))
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not yet supported", ttc)
	}
	return descs, nil
}

// parseFontConfigList reads lines in fc-list's default format:
//
//     /usr/share/fonts/TTF/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
//
func parseFontConfigList(scanner *bufio.Scanner) (descs []FileDescriptor, ttc int) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		fontname := strings.TrimSpace(strings.Split(fields[1], ",")[0])
		fontname = strings.TrimPrefix(fontname, ".")
		fontvari := strings.ToLower(fields[2])
		if strings.HasSuffix(strings.ToLower(fontpath), ".ttc") {
			ttc++
			continue
		}
		desc := FileDescriptor{
			Family: fontname,
			Path:   fontpath,
		}
		switch {
		case strings.Contains(fontvari, "bold") &&
			(strings.Contains(fontvari, "italic") || strings.Contains(fontvari, "oblique")):
			desc.Variants = []string{"700italic"}
		case strings.Contains(fontvari, "regular"), strings.Contains(fontvari, "text"),
			strings.Contains(fontvari, "book"):
			desc.Variants = []string{"regular"}
		case strings.Contains(fontvari, "light"):
			desc.Variants = []string{"light"}
		case strings.Contains(fontvari, "italic"), strings.Contains(fontvari, "oblique"):
			desc.Variants = []string{"italic"}
		case strings.Contains(fontvari, "bold"), strings.Contains(fontvari, "black"):
			desc.Variants = []string{"bold"}
		}
		descs = append(descs, desc)
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("encountered a problem during reading of fontconfig font list: %v", err)
	}
	return descs, ttc
}
