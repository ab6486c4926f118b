package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"corpsite.backend/internal/config"
	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/infrastructure/metrics"
	"corpsite.backend/internal/interfaces/http/handlers"
	"corpsite.backend/internal/interfaces/http/middleware"
)

const (
	maxMultipartMemory = 8 << 20
	defaultAPIPrefix   = "/api"
)

type routeDeps struct {
	applicationHandler *handlers.SubmissionHandler[entities.Application]
	contactHandler     *handlers.SubmissionHandler[entities.ContactMessage]
	inquiryHandler     *handlers.SubmissionHandler[entities.Inquiry]
	hackathonHandler   *handlers.SubmissionHandler[entities.HackathonTeam]
	contentHandler     *handlers.ContentHandler
	idempotency        gin.HandlerFunc
}

func newRouter(cfg *config.Config, m *metrics.Metrics, d routeDeps) *gin.Engine {
	r := gin.New()
	// both /x and /x/ are registered explicitly
	r.RedirectTrailingSlash = false
	r.MaxMultipartMemory = maxMultipartMemory

	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r, cfg.Server.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r, m)
	r.Static("/media", cfg.Media.Root)
	registerAPIRoutes(r, apiGroupPath(cfg.Server.APIPrefix), d)
	return r
}

func applyCORSMiddleware(r *gin.Engine, origins []string) {
	r.Use(middleware.CORSMiddleware(origins))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "corpsite-backend"})
	})
}

func registerMetricsRoute(r *gin.Engine, m *metrics.Metrics) {
	if m == nil {
		return
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}

// apiGroupPath normalizes the configured mount point. "/" mounts the API at the root.
func apiGroupPath(prefix string) string {
	if prefix == "" {
		return defaultAPIPrefix
	}
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

func registerAPIRoutes(r *gin.Engine, prefix string, d routeDeps) {
	idempotency := d.idempotency
	if idempotency == nil {
		idempotency = func(c *gin.Context) { c.Next() }
	}

	api := r.Group(prefix)
	{
		registerSubmissionRoutes(api, "apply", d.applicationHandler, idempotency)
		registerSubmissionRoutes(api, "contact", d.contactHandler, idempotency)
		registerSubmissionRoutes(api, "inquiry", d.inquiryHandler, idempotency)
		registerSubmissionRoutes(api, "hackathon", d.hackathonHandler, idempotency)

		registerList(api, "mous", d.contentHandler.ListMOUs)
		registerList(api, "gallery", d.contentHandler.ListGallery)
		registerList(api, "projects", d.contentHandler.ListProjects)
		registerList(api, "giveback", d.contentHandler.ListGiveback)
	}
}

func registerSubmissionRoutes[E any](g *gin.RouterGroup, name string, h *handlers.SubmissionHandler[E], idempotency gin.HandlerFunc) {
	for _, path := range []string{"/" + name + "/", "/" + name} {
		g.GET(path, h.List)
		g.POST(path, idempotency, h.Create)
	}
	g.DELETE("/"+name+"/:id/", h.Delete)
	g.DELETE("/"+name+"/:id", h.Delete)
}

func registerList(g *gin.RouterGroup, name string, h gin.HandlerFunc) {
	g.GET("/"+name+"/", h)
	g.GET("/"+name, h)
}
