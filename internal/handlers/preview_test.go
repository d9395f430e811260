package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

type previewReply struct {
	Type string `json:"type"`
	Data struct {
		Style  style.Model  `json:"style"`
		Render RenderResult `json:"render"`
		Error  string       `json:"error"`
		Names  []string     `json:"names"`
	} `json:"data"`
}

func dialPreview(t *testing.T) (*API, *websocket.Conn) {
	a, r := setupAPI(t)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/preview"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return a, conn
}

func readReply(t *testing.T, conn *websocket.Conn) previewReply {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply previewReply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestPreviewSessionKeepsState(t *testing.T) {
	_, conn := dialPreview(t)

	hello := readReply(t, conn)
	require.Equal(t, "preview", hello.Type)
	assert.Equal(t, style.Default(), hello.Data.Style)

	require.NoError(t, conn.WriteJSON(gin.H{"type": "patch", "patch": gin.H{"text": "Live", "fontSize": 22}}))
	reply := readReply(t, conn)
	require.Equal(t, "preview", reply.Type)
	assert.Contains(t, reply.Data.Render.HTML, ">Live<")

	require.NoError(t, conn.WriteJSON(gin.H{"type": "preset", "name": "danger"}))
	reply = readReply(t, conn)
	assert.Equal(t, 22.0, reply.Data.Style.FontSize, "presets merge over the session style")
	assert.Equal(t, "#ef4444", reply.Data.Style.Bg1)

	require.NoError(t, conn.WriteJSON(gin.H{"type": "reset"}))
	assert.Equal(t, style.Default(), readReply(t, conn).Data.Style)
}

func TestPreviewErrorsKeepConnection(t *testing.T) {
	_, conn := dialPreview(t)
	readReply(t, conn)

	require.NoError(t, conn.WriteJSON(gin.H{"type": "token", "token": "not-valid-base64!!"}))
	reply := readReply(t, conn)
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Data.Error, "malformed")

	require.NoError(t, conn.WriteJSON(gin.H{"type": "suggest", "prompt": "glossy"}))
	reply = readReply(t, conn)
	assert.Equal(t, "preview", reply.Type)
	assert.Equal(t, "#7dd3fc", reply.Data.Style.Bg1)
}

func TestPreviewBroadcastsPresetChanges(t *testing.T) {
	a, conn := dialPreview(t)
	readReply(t, conn)

	require.Eventually(t, func() bool { return a.Hub().ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	a.Hub().OnPresetsChanged(style.NewCatalog(style.Preset{Name: "brand"}))

	reply := readReply(t, conn)
	assert.Equal(t, "presets", reply.Type)
	assert.Contains(t, reply.Data.Names, "brand")
}
