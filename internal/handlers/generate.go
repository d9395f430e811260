package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/exporters"
	"github.com/thatcatcamp/buttonsmith/internal/markup"
	"github.com/thatcatcamp/buttonsmith/internal/middleware"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/themes"
)

type cssRequest struct {
	styleInput
	Selector string `json:"selector"`
}

type htmlRequest struct {
	styleInput
	ClassName string `json:"className"`
}

type renderRequest struct {
	styleInput
	Selector  string `json:"selector"`
	ClassName string `json:"className"`
}

// RenderResult bundles every output for one style
type RenderResult struct {
	CSS        string            `json:"css"`
	HTML       string            `json:"html"`
	Keyframes  string            `json:"keyframes"`
	RippleHook bool              `json:"rippleHook"`
	Token      string            `json:"token"`
	ShareURL   string            `json:"shareUrl,omitempty"`
	Exports    map[string]string `json:"exports"`
	Issues     []style.Issue     `json:"issues"`
}

// CSS renders the stylesheet
func (a *API) CSS(c *gin.Context) {
	var req cssRequest
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"css": themes.GenerateCSS(m, a.selectorOr(req.Selector))})
}

// HTML renders the button markup
func (a *API) HTML(c *gin.Context) {
	var req htmlRequest
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": markup.GenerateHTML(m, req.ClassName)})
}

// Document serves the standalone export page as a download
func (a *API) Document(c *gin.Context) {
	var req styleInput
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="button-export.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup.GenerateDocument(m, middleware.CSPNonce(c))))
}

// Export renders one framework snippet
func (a *API) Export(c *gin.Context) {
	var req styleInput
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	format := c.Param("format")
	code, err := exporters.Export(format, m)
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"format": format, "code": code})
}

// ListFormats lists the export formats
func (a *API) ListFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": exporters.Formats()})
}

// Render returns everything the editor shows for one style
func (a *API) Render(c *gin.Context) {
	var req renderRequest
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	result, err := a.render(m, req.Selector, req.ClassName)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (a *API) render(m style.Model, selector, className string) (RenderResult, error) {
	token, err := codec.Encode(m)
	if err != nil {
		return RenderResult{}, err
	}

	exports := make(map[string]string, len(exporters.Formats()))
	for _, f := range exporters.Formats() {
		code, err := exporters.Export(f, m)
		if err != nil {
			return RenderResult{}, err
		}
		exports[f] = code
	}

	resolved := m.Resolve()
	issues := style.Lint(m)
	if issues == nil {
		issues = []style.Issue{}
	}
	return RenderResult{
		CSS:        themes.GenerateCSS(m, a.selectorOr(selector)),
		HTML:       markup.GenerateHTML(m, className),
		Keyframes:  themes.Keyframes(resolved.Animation),
		RippleHook: themes.NeedsRippleHook(resolved.Animation),
		Token:      token,
		ShareURL:   a.shareURL(token),
		Exports:    exports,
		Issues:     issues,
	}, nil
}

// Lint reports questionable values without blocking generation
func (a *API) Lint(c *gin.Context) {
	var req styleInput
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	issues := style.Lint(m)
	if issues == nil {
		issues = []style.Issue{}
	}
	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

func (a *API) selectorOr(selector string) string {
	if selector == "" {
		return a.selector
	}
	return selector
}
