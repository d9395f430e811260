package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/markup"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/suggest"
)

type presetView struct {
	Name  string      `json:"name"`
	Patch style.Patch `json:"patch"`
	Style style.Model `json:"style"`
}

type iconView struct {
	Key    string `json:"key"`
	Markup string `json:"markup"`
}

type suggestRequest struct {
	styleInput
	Prompt string `json:"prompt"`
}

// ListPresets lists the catalog with each preset applied to the defaults
func (a *API) ListPresets(c *gin.Context) {
	presets := a.catalog().List()
	views := make([]presetView, 0, len(presets))
	for _, p := range presets {
		views = append(views, presetView{
			Name:  p.Name,
			Patch: p.Patch,
			Style: style.Merge(style.Default(), p.Patch),
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": views})
}

// ApplyPreset merges a preset over the posted style
func (a *API) ApplyPreset(c *gin.Context) {
	var req styleInput
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	out, err := a.catalog().Apply(m, c.Param("name"))
	if err != nil {
		fail(c, statusFor(err, map[error]int{style.ErrUnknownPreset: http.StatusNotFound}), err)
		return
	}
	a.respondStyle(c, out, nil)
}

// ListIcons lists the icon library
func (a *API) ListIcons(c *gin.Context) {
	keys := style.Icons()
	views := make([]iconView, 0, len(keys))
	for _, k := range keys {
		markup, _ := style.IconMarkup(k)
		views = append(views, iconView{Key: k, Markup: markup})
	}
	c.JSON(http.StatusOK, gin.H{"icons": views})
}

// UploadIcon sanitizes an uploaded SVG into a custom icon. It takes a
// multipart "file" or a plain "markup" form field.
func (a *API) UploadIcon(c *gin.Context) {
	raw, err := iconUpload(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	clean, err := markup.SanitizeIcon(raw)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, markup.ErrIconTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		fail(c, status, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"icon": style.CustomIcon(clean)})
}

func iconUpload(c *gin.Context) (string, error) {
	if fh, err := c.FormFile("file"); err == nil {
		if fh.Size > markup.MaxIconBytes {
			return "", markup.ErrIconTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, markup.MaxIconBytes+1))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if raw := strings.TrimSpace(c.PostForm("markup")); raw != "" {
		return raw, nil
	}
	return "", errors.New("no icon file or markup provided")
}

// Suggest applies the keyword rules to the posted style
func (a *API) Suggest(c *gin.Context) {
	var req suggestRequest
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	out, s, err := suggest.Apply(m, req.Prompt)
	if err != nil {
		fail(c, statusFor(err, map[error]int{suggest.ErrEmptyPrompt: http.StatusBadRequest}), err)
		return
	}
	rules := s.Rules
	if rules == nil {
		rules = []string{}
	}
	a.respondStyle(c, out, gin.H{
		"rules":   rules,
		"matched": s.Matched(),
		"patch":   s.Patch,
	})
}

// respondStyle writes the style with its token plus any extra fields
func (a *API) respondStyle(c *gin.Context, m style.Model, extra gin.H) {
	token, err := codec.Encode(m)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err)
		return
	}
	body := gin.H{"style": m, "token": token}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
