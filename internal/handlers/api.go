// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/buttonsmith/internal/logger"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"gorm.io/gorm"
)

// Catalogs yields the preset catalog currently in effect
type Catalogs interface {
	Catalog() *style.Catalog
}

// Options configures the API
type Options struct {
	DB                *gorm.DB
	Presets           Catalogs
	Log               *logger.Logger
	PublicURL         string
	Selector          string
	PlaygroundEntries int
}

// API serves the style engine over HTTP
type API struct {
	db         *gorm.DB
	presets    Catalogs
	log        *logger.Logger
	publicURL  string
	selector   string
	playground int
	hub        *PreviewHub
}

// New creates the API and its preview hub
func New(opts Options) *API {
	if opts.Selector == "" {
		opts.Selector = ".btn-like"
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	a := &API{
		db:         opts.DB,
		presets:    opts.Presets,
		log:        opts.Log,
		publicURL:  strings.TrimRight(opts.PublicURL, "/"),
		selector:   opts.Selector,
		playground: opts.PlaygroundEntries,
	}
	a.hub = NewPreviewHub(a)
	return a
}

// Hub returns the live preview hub
func (a *API) Hub() *PreviewHub {
	return a.hub
}

// Register mounts every route. write wraps the state-changing routes, typically
// with a rate limiter.
func (a *API) Register(r gin.IRouter, write ...gin.HandlerFunc) {
	r.GET("/health", a.Health)
	r.GET("/share", a.Share)
	r.GET("/ws/preview", a.hub.Serve)

	api := r.Group("/api")
	{
		api.GET("/presets", a.ListPresets)
		api.GET("/icons", a.ListIcons)
		api.GET("/formats", a.ListFormats)
		api.GET("/projects", a.ListProjects)
		api.GET("/projects/:id", a.GetProject)
		api.GET("/playground", a.ListPlayground)
	}

	gen := api.Group("", write...)
	{
		gen.POST("/css", a.CSS)
		gen.POST("/html", a.HTML)
		gen.POST("/document", a.Document)
		gen.POST("/export/:format", a.Export)
		gen.POST("/render", a.Render)
		gen.POST("/suggest", a.Suggest)
		gen.POST("/encode", a.Encode)
		gen.POST("/decode", a.Decode)
		gen.POST("/lint", a.Lint)
		gen.POST("/presets/:name/apply", a.ApplyPreset)
		gen.POST("/icons/upload", a.UploadIcon)
		gen.POST("/projects", a.SaveProject)
		gen.DELETE("/projects/:id", a.DeleteProject)
		gen.POST("/playground", a.AddToPlayground)
		gen.DELETE("/playground/:id", a.RemoveFromPlayground)
		gen.DELETE("/playground", a.ClearPlayground)
	}
}

// Health reports liveness
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "buttonsmith",
	})
}

func (a *API) catalog() *style.Catalog {
	if a.presets == nil {
		return style.NewCatalog()
	}
	return a.presets.Catalog()
}

// fail writes the error body and records err on the context for the request log
func fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// statusFor maps engine errors to HTTP statuses
func statusFor(err error, known map[error]int) int {
	for target, status := range known {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
