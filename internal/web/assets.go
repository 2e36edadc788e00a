package web

import (
	"net/http"

	"github.com/ziadkadry99/hana-site/internal/assets"
)

// assetHandler serves files from the assets directory whose path matches an
// include glob. Everything else is a 404, including directories.
func (s *Server) assetHandler() http.Handler {
	files := http.FileServer(http.Dir(s.cfg.AssetsDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AssetsDir == "" || !assets.Allowed(r.URL.Path, s.cfg.AssetIncludes) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
