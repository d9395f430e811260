package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/markup"
	"github.com/thatcatcamp/buttonsmith/internal/middleware"
)

type decodeRequest struct {
	Token string `json:"token" binding:"required"`
}

// Encode turns a style into a token and share link. A style that would not
// come back unchanged from its token is refused.
func (a *API) Encode(c *gin.Context) {
	var req styleInput
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	if err := codec.Verify(m); err != nil {
		fail(c, http.StatusUnprocessableEntity, err)
		return
	}
	token, err := codec.Encode(m)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "url": a.shareURL(token)})
}

// Decode turns a token back into a style
func (a *API) Decode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	m, err := codec.Decode(req.Token)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"style": m})
}

// Share renders the page for a share link. A bad or missing token shows the
// default button rather than an error page. Tokens come from anyone, so the
// page relies on GenerateDocument's sanitizing and the CSP nonce.
func (a *API) Share(c *gin.Context) {
	m, err := codec.Decode(c.Query("style"))
	if err != nil && c.Query("style") != "" {
		a.log.With("error", err.Error()).Debug("share link fell back to defaults")
		c.Header("X-Style-Fallback", "true")
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup.GenerateDocument(m, middleware.CSPNonce(c))))
}

func (a *API) shareURL(token string) string {
	if a.publicURL == "" {
		return ""
	}
	u, err := codec.ShareURL(a.publicURL+"/share", token)
	if err != nil {
		return ""
	}
	return u
}
