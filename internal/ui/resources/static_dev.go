//go:build dev

package resources

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

// Handler serves static assets straight from the source tree so CSS and
// JS edits show up on reload without rebuilding. No cache headers: the
// browser revalidates every request.
func Handler() http.Handler {
	dir := sourceStaticDir()
	return http.StripPrefix("/static/", http.FileServer(http.FS(os.DirFS(dir))))
}

// sourceStaticDir locates the static directory next to this file, so the
// dev build works from any working directory.
func sourceStaticDir() string {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(self), "static")
}

// StaticPath returns the URL path for a static asset.
func StaticPath(name string) string {
	return "/static/" + name
}
