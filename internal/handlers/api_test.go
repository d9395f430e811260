package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/db"
	"github.com/thatcatcamp/buttonsmith/internal/middleware"
	"github.com/thatcatcamp/buttonsmith/internal/presetwatch"
	"github.com/thatcatcamp/buttonsmith/internal/style"
)

func setupAPI(t *testing.T) (*API, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)

	a := New(Options{
		DB:                database,
		Presets:           presetwatch.NewStore(nil),
		PublicURL:         "https://buttons.example.com/",
		PlaygroundEntries: 2,
	})
	r := gin.New()
	a.Register(r)
	return a, r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestHealth(t *testing.T) {
	_, r := setupAPI(t)
	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "buttonsmith", decodeBody(t, w)["service"])
}

func TestCSSDefaultsWithEmptyBody(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/css", nil)
	require.Equal(t, http.StatusOK, w.Code)

	css := decodeBody(t, w)["css"].(string)
	assert.Contains(t, css, ".btn-like {")
	assert.Contains(t, css, "linear-gradient(135deg, #06b6d4, #3b82f6)")
}

func TestCSSPartialStyleMergesOverDefaults(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/css", gin.H{
		"style":    gin.H{"bgType": "solid", "bg1": "#ef4444"},
		"selector": ".danger",
	})
	require.Equal(t, http.StatusOK, w.Code)

	css := decodeBody(t, w)["css"].(string)
	assert.Contains(t, css, ".danger {")
	assert.Contains(t, css, "background: #ef4444;")
	assert.Contains(t, css, "padding: 10px 18px;")
}

func TestHTMLFromToken(t *testing.T) {
	_, r := setupAPI(t)
	m := style.Default()
	m.Text = "Buy <now>"
	token, err := codec.Encode(m)
	require.NoError(t, err)

	w := postJSON(r, "/api/html", gin.H{"token": token, "className": "cta"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `<button class="cta"><span class="label">Buy &lt;now&gt;</span></button>`, decodeBody(t, w)["html"])
}

func TestMalformedTokenIsBadRequest(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/css", gin.H{"token": "not-valid-base64!!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "malformed")

	w = postJSON(r, "/api/decode", gin.H{"token": "not-valid-base64!!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/decode", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "token is required")
}

func TestBadJSONIsBadRequest(t *testing.T) {
	_, r := setupAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/css", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/export/vue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(decodeBody(t, w)["code"].(string), "<template>"))

	w = postJSON(r, "/api/export/svelte", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderBundlesOutputs(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/render", gin.H{"style": gin.H{"animation": "ripple"}})
	require.Equal(t, http.StatusOK, w.Code)

	var result RenderResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.RippleHook)
	assert.Len(t, result.Exports, 4)
	assert.Empty(t, result.Issues)
	assert.True(t, strings.HasPrefix(result.ShareURL, "https://buttons.example.com/share?style="))

	m, err := codec.Decode(result.Token)
	require.NoError(t, err)
	assert.Equal(t, style.AnimationRipple, m.Animation)
}

func TestDocumentDownload(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/document", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "button-export.html")
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!doctype html>"))
}

func TestSuggestEndpoint(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/suggest", gin.H{"prompt": "make it neon and futuristic"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["matched"])
	s := body["style"].(map[string]any)
	assert.Equal(t, "gradient", s["bgType"])
	assert.Equal(t, "#ff007f", s["bg1"])
	assert.Equal(t, "#7c3aed", s["bg2"])
	assert.Equal(t, true, s["pill"])
	assert.Equal(t, "pulse", s["animation"])

	w = postJSON(r, "/api/suggest", gin.H{"prompt": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncodeDecode(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/encode", gin.H{"style": gin.H{"text": "Share me"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	token := body["token"].(string)
	assert.Contains(t, body["url"], "/share?style="+token)

	w = postJSON(r, "/api/decode", gin.H{"token": token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Share me", decodeBody(t, w)["style"].(map[string]any)["text"])
}

func TestShareFallsBackToDefaults(t *testing.T) {
	_, r := setupAPI(t)
	w := get(r, "/share?style=garbage!!")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Style-Fallback"))
	assert.Contains(t, w.Body.String(), "<span class=\"label\">Like</span>")
}

func TestShareNeutralizesHostileToken(t *testing.T) {
	a, _ := setupAPI(t)
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(false))
	a.Register(r)

	m := style.Default()
	m.Animation = style.AnimationRipple
	m.Icon = style.CustomIcon(`<svg><script>alert('icon')</script></svg><img src=x onerror=alert(1)>`)
	m.CSSVars = "--x: 1;</style><script>alert('css')</script><style>"
	token, err := codec.Encode(m)
	require.NoError(t, err)

	w := get(r, "/share?style="+token)
	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()

	csp := w.Header().Get("Content-Security-Policy")
	_, after, found := strings.Cut(csp, "'nonce-")
	require.True(t, found, csp)
	nonce, _, _ := strings.Cut(after, "'")

	assert.Equal(t, 1, strings.Count(page, "<script"), "only the ripple handler may run")
	assert.Contains(t, page, `<script nonce="`+nonce+`">`)
	assert.NotContains(t, page, "onerror")
	assert.NotContains(t, page, "alert('icon')")
	assert.Equal(t, 1, strings.Count(page, "</style>"))
	assert.NotContains(t, csp, "script-src 'self' 'unsafe-inline'")
}

func TestLint(t *testing.T) {
	_, r := setupAPI(t)
	w := postJSON(r, "/api/lint", gin.H{"style": gin.H{"bg1": "banana", "padX": -4}})
	require.Equal(t, http.StatusOK, w.Code)
	issues := decodeBody(t, w)["issues"].([]any)
	assert.GreaterOrEqual(t, len(issues), 2)
}

func TestPresets(t *testing.T) {
	_, r := setupAPI(t)
	w := get(r, "/api/presets")
	require.Equal(t, http.StatusOK, w.Code)
	presets := decodeBody(t, w)["presets"].([]any)
	assert.Len(t, presets, len(style.Presets()))

	w = postJSON(r, "/api/presets/danger/apply", gin.H{"style": gin.H{"fontSize": 22}})
	require.Equal(t, http.StatusOK, w.Code)
	s := decodeBody(t, w)["style"].(map[string]any)
	assert.Equal(t, "Delete", s["text"])
	assert.Equal(t, 22.0, s["fontSize"], "fields outside the preset are kept")
	assert.Equal(t, "solid", s["bgType"])
	assert.Equal(t, "#ef4444", s["bg1"])
	assert.Equal(t, "shake", s["animation"])

	w = postJSON(r, "/api/presets/dangr/apply", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "danger")
}

func TestIcons(t *testing.T) {
	_, r := setupAPI(t)
	w := get(r, "/api/icons")
	require.Equal(t, http.StatusOK, w.Code)
	icons := decodeBody(t, w)["icons"].([]any)
	assert.Equal(t, "heart", icons[0].(map[string]any)["key"])
}

func TestUploadIcon(t *testing.T) {
	_, r := setupAPI(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "icon.svg")
	require.NoError(t, err)
	fw.Write([]byte(`<svg viewBox="0 0 24 24" onload="x()"><path d="M0 0"/></svg>`))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/icons/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	icon := decodeBody(t, w)["icon"].(map[string]any)
	assert.Equal(t, "custom", icon["kind"])
	assert.NotContains(t, icon["markup"], "onload")

	req = httptest.NewRequest(http.MethodPost, "/api/icons/upload", strings.NewReader("markup=%3Cimg%3E"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
