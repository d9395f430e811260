// Package codec turns a style model into a compact URL-safe token and back.
//
// A token is the unpadded base64url encoding of a versioned JSON envelope:
//
//	{"v":1,"style":{...}}
//
// Tokens written by earlier releases (standard base64 over a URI-encoded,
// unversioned style object) still decode so old share links keep working.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// Version is the envelope version Encode writes.
const Version = 1

var (
	// ErrMalformedToken is returned when a token cannot be decoded.
	ErrMalformedToken = errors.New("malformed style token")
	// ErrUnsupportedVersion is returned for tokens written by a newer release.
	ErrUnsupportedVersion = errors.New("unsupported style token version")
	// ErrRoundTrip is returned by Verify when decoding does not reproduce the model.
	ErrRoundTrip = errors.New("style does not survive encoding")
)

type envelope struct {
	V     int             `json:"v"`
	Style json.RawMessage `json:"style"`
}

// Encode serializes m into a token.
func Encode(m style.Model) (string, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode style: %w", err)
	}
	data, err := json.Marshal(envelope{V: Version, Style: body})
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a token. Fields the token does not carry take their default
// value. Any failure wraps ErrMalformedToken or ErrUnsupportedVersion, and the
// returned model is then the default.
func Decode(token string) (style.Model, error) {
	raw, err := unwrap(token)
	if err != nil {
		return style.Default(), err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return style.Default(), fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	body := raw
	switch {
	case env.V > Version:
		return style.Default(), fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.V)
	case env.V > 0:
		if len(env.Style) == 0 {
			return style.Default(), fmt.Errorf("%w: envelope has no style", ErrMalformedToken)
		}
		body = env.Style
	}

	m := style.Default()
	if err := json.Unmarshal(body, &m); err != nil {
		return style.Default(), fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return m, nil
}

// unwrap undoes the transport encoding and returns the JSON document.
func unwrap(token string) ([]byte, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		// legacy tokens use the standard alphabet, and a '+' that went through
		// a query string unescaped comes back as a space
		legacy := strings.ReplaceAll(token, " ", "+")
		if data, err = base64.StdEncoding.DecodeString(legacy); err != nil {
			if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(legacy, "=")); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
			}
		}
	}

	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("{")) {
		return data, nil
	}
	// legacy payloads are URI-encoded JSON
	unescaped, err := url.PathUnescape(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if !strings.HasPrefix(strings.TrimSpace(unescaped), "{") {
		return nil, fmt.Errorf("%w: not a style document", ErrMalformedToken)
	}
	return []byte(unescaped), nil
}

// Verify checks that m decodes back to itself.
func Verify(m style.Model) error {
	token, err := Encode(m)
	if err != nil {
		return err
	}
	back, err := Decode(token)
	if err != nil {
		return err
	}
	if back != m {
		return fmt.Errorf("%w: fields %s differ", ErrRoundTrip, strings.Join(style.Diff(m, back).Fields(), ", "))
	}
	return nil
}

// ShareURL appends token to base as the style query parameter, keeping any
// query base already has.
func ShareURL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base: %w", err)
	}
	q := u.Query()
	q.Set("style", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
