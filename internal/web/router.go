package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"enrollment/internal/config"
	"enrollment/internal/httpmiddleware"
	"enrollment/internal/logging"
	"enrollment/internal/store"
)

// Router assembles the gin engine: middleware, operational endpoints,
// the registration API, and page serving for everything else.
func Router(cfg config.App, h *Handler, limiter httpmiddleware.Limiter, rdb *store.Redis) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	if limiter != nil {
		r.Use(httpmiddleware.RateLimit(limiter))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		resp := gin.H{"status": "ok"}
		status := http.StatusOK
		if rdb != nil {
			healthy := rdb.Healthy(c.Request.Context())
			resp["redis"] = healthy
			if !healthy {
				status = http.StatusServiceUnavailable
			}
		}
		c.JSON(status, resp)
	})

	v1 := r.Group("/v1")
	v1.POST("/registrations", h.SubmitRegistration)
	v1.GET("/registrations", h.ListRegistrations)
	v1.GET("/summary", h.GetSummary)
	v1.GET("/report", h.GetReport)

	mountPages(r, cfg)
	return r
}

// corsMiddleware allows browser requests from the page's origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// securityHeaders sets the usual response hardening headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
