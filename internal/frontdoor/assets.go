package frontdoor

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// assetFS hides directory listings: a directory without an index.html
// behaves as if it did not exist.
type assetFS struct {
	http.FileSystem
}

func (fs assetFS) Open(name string) (http.File, error) {
	f, err := fs.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		index, err := fs.FileSystem.Open(path.Join(name, "index.html"))
		if err != nil {
			f.Close()
			return nil, os.ErrNotExist
		}
		index.Close()
	}

	return f, nil
}

// NewStaticHandler serves files below dir. Requests under /ui are mapped
// onto dir with the prefix removed; root level files such as /favicon.ico
// are looked up in dir directly.
func NewStaticHandler(dir string) http.Handler {
	files := http.FileServer(assetFS{http.Dir(dir)})
	ui := http.StripPrefix(uiPrefix, files)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == uiPrefix:
			http.Redirect(w, r, uiHome, http.StatusMovedPermanently)
		case strings.HasPrefix(r.URL.Path, uiPrefix+"/"):
			ui.ServeHTTP(w, r)
		default:
			files.ServeHTTP(w, r)
		}
	})
}

// NewShellHandler always answers with the SPA shell document, leaving the
// deep link to the client side router. The request path is never looked at,
// so /ui/image/index.html gets the shell like any other deep link.
func NewShellHandler(shellPath string) http.Handler {
	name := path.Base(filepath.ToSlash(shellPath))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := os.Open(shellPath)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil || stat.IsDir() {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		http.ServeContent(w, r, name, stat.ModTime(), f)
	})
}
