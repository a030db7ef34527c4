// Package api wraps all traffic to the mailroom backend and normalizes every
// response into a uniform {ok, status, body} shape before it reaches the rest
// of the program. Nothing outside this package touches *http.Response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

// TokenSource supplies the stored credential token, if any. An empty string
// means "send no bearer header".
type TokenSource interface {
	Token() string
}

// Client issues requests against one backend base URL. It carries ambient
// session cookies across calls and attaches the stored token as a bearer
// credential when present.
//
// Non-2xx statuses are not errors: they come back as data in the Response.
// The returned error is non-nil only for true transport failures.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource

	// DebugLogPath, when non-empty, appends one line per request/response to
	// that file. Best effort; failures are ignored.
	DebugLogPath string
}

// New builds a client for the given base URL (no trailing slash needed).
// tokens may be nil for an always-anonymous client.
//
// No client-side timeout is configured: a hung request blocks only the
// action that issued it, and the operator retries explicitly.
func New(base string, tokens TokenSource) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Jar: jar},
		tokens: tokens,
	}
}

// Base returns the backend base URL the client was built with.
func (c *Client) Base() string { return c.base }

// Response is the normalized result of one call.
//
// Body holds parsed JSON (maps/slices/primitives) when the server announced
// a JSON content type, the raw text otherwise, and nil when a JSON body
// failed to parse. raw keeps the exact bytes for typed decoding.
type Response struct {
	OK     bool `json:"ok"`
	Status int  `json:"status"`
	Body   any  `json:"body"`

	raw    []byte
	isJSON bool
}

// Decode unmarshals the raw response body into v. It fails when the server
// did not announce JSON.
func (r Response) Decode(v any) error {
	if !r.isJSON {
		return fmt.Errorf("response is not JSON (status %d)", r.Status)
	}
	return json.Unmarshal(r.raw, v)
}

// Pretty renders the normalized response as indented JSON for the status
// line and CLI diagnostics, mirroring exactly what the wire carried.
func (r Response) Pretty() string {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf("{ok: %v, status: %d}", r.OK, r.Status)
	}
	return string(b)
}

// Call performs one request. body (when non-nil) is marshaled as JSON.
func (c *Client) Call(ctx context.Context, method, path string, body any) (Response, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.debugLogf("call %s %s transport error: %v", method, path, err)
		return Response{}, &TransportError{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.debugLogf("call %s %s read error: %v", method, path, err)
		return Response{}, &TransportError{Err: err}
	}

	out := Response{
		OK:     res.StatusCode >= 200 && res.StatusCode < 300,
		Status: res.StatusCode,
		raw:    raw,
	}
	if isJSONContentType(res.Header.Get("Content-Type")) {
		out.isJSON = true
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			out.Body = parsed
		}
		// Malformed JSON keeps Body nil; the raw bytes stay available.
	} else {
		out.Body = string(raw)
	}

	c.debugLogf("call %s %s -> ok=%v status=%d bytes=%d", method, path, out.OK, out.Status, len(raw))
	return out, nil
}

func isJSONContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
