package resources

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/typecase/core"
)

// DownloadCachedFile will download a url to a local file (usually located in the
// user's cache directory).
func DownloadCachedFile(fpath string, url string) error {
	return downloadFile(http.DefaultClient, fpath, url)
}

func downloadFile(client *http.Client, fpath string, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot download %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return core.Error(core.ECONNECTION, "cannot download %s: %s", url, resp.Status)
	}
	out, err := os.Create(fpath)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create cache file %s", fpath)
	}
	if _, err = io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(fpath)
		return core.WrapError(err, core.ECONNECTION, "download of %s interrupted", url)
	}
	return out.Close()
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(conf schuko.Configuration, subfolders ...string) (string, error) {
	appkey := conf.GetString("app-key")
	tracer().Debugf("config[%s] = %s", "app-key", appkey)
	if appkey == "" {
		return "", core.Error(core.EINVALID, "application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "user cache directory not set")
	}
	subs := filepath.Join(subfolders...)
	cachedir = filepath.Join(cachedir, appkey, subs)
	tracer().Infof("caching in %s", cachedir)
	if err = os.MkdirAll(cachedir, 0755); err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot create cache directory %s", cachedir)
	}
	return cachedir, nil
}
