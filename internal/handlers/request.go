package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// styleInput is how every generation endpoint receives a style. Token is
// decoded first, Style is layered over it (or over defaults) and Patch last.
type styleInput struct {
	Token string          `json:"token"`
	Style json.RawMessage `json:"style"`
	Patch *style.Patch    `json:"patch"`
}

func (in styleInput) model() (style.Model, error) {
	m := style.Default()
	if in.Token != "" {
		decoded, err := codec.Decode(in.Token)
		if err != nil {
			return m, err
		}
		m = decoded
	}
	if len(in.Style) > 0 && string(in.Style) != "null" {
		if err := json.Unmarshal(in.Style, &m); err != nil {
			return m, fmt.Errorf("%w: style: %v", errBadRequest, err)
		}
	}
	if in.Patch != nil {
		m = style.Merge(m, *in.Patch)
	}
	return m, nil
}

var errBadRequest = errors.New("bad request")

// bind decodes the JSON body into req. An empty body leaves req untouched so
// the endpoints work on defaults.
func bind(c *gin.Context, req any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// modelFrom binds req and resolves its style, writing the error response on
// failure.
func modelFrom(c *gin.Context, req interface{ model() (style.Model, error) }) (style.Model, bool) {
	if err := bind(c, req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return style.Model{}, false
	}
	m, err := req.model()
	if err != nil {
		fail(c, statusFor(err, map[error]int{
			codec.ErrMalformedToken:     http.StatusBadRequest,
			codec.ErrUnsupportedVersion: http.StatusBadRequest,
			errBadRequest:               http.StatusBadRequest,
		}), err)
		return style.Model{}, false
	}
	return m, true
}
