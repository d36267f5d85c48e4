//go:build !dev

package resources

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var embedded embed.FS

// Handler serves the embedded stylesheet and script. The asset names are
// not fingerprinted, so clients cache for an hour rather than forever; a
// release ships new content under the same URLs.
func Handler() http.Handler {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	files := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// StaticPath returns the URL path for a static asset.
func StaticPath(name string) string {
	return "/static/" + name
}
