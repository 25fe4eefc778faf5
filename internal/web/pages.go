package web

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"enrollment/internal/config"
)

// mountPages wires page serving. In development, unmatched requests
// are proxied to the front-end dev server so its on-the-fly transform
// and live reload stay in charge of assets. In production the built
// assets are served from disk, with index.html as the fallback for
// client-side routes.
func mountPages(r *gin.Engine, cfg config.App) {
	if !cfg.Production() && cfg.DevServerURL != "" {
		target, err := url.Parse(cfg.DevServerURL)
		if err != nil {
			log.Fatal().Err(err).Str("url", cfg.DevServerURL).Msg("invalid DEV_SERVER_URL")
		}
		proxy := httputil.NewSingleHostReverseProxy(target)
		r.NoRoute(func(c *gin.Context) {
			proxy.ServeHTTP(c.Writer, c.Request)
		})
		log.Info().Str("target", cfg.DevServerURL).Msg("proxying pages to dev server")
		return
	}

	index := filepath.Join(cfg.StaticDir, "index.html")
	r.StaticFile("/", index)
	r.Static("/static", filepath.Join(cfg.StaticDir, "static"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
}
