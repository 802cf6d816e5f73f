// Package api is the typed HTTP client for the content server. Every
// failure it returns is a coded domain error, so callers can tell a
// missing endpoint (CONFIGURATION) from a slow one (TIMEOUT), a dead one
// (NETWORK), an unknown id (NOT_FOUND), and a broken relation
// (DATA_INTEGRITY) without parsing messages.
package api

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// maxBodySize bounds response reads. The largest real payload (the full
// chapter list) is well under this.
const maxBodySize = 4 << 20

// installIDHeader carries the client install identity on every request.
const installIDHeader = "X-Shloka-Client"

// Client calls the content server's read endpoints.
type Client struct {
	baseURL   string
	installID string
	httpc     *http.Client
}

// New creates a client for the server at baseURL. An empty baseURL is
// legal at construction time; every call on such a client fails with a
// CONFIGURATION error before touching the network. The zero timeout on
// httpc is fine: callers bound requests with their context.
func New(baseURL, installID string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		installID: installID,
		httpc:     &http.Client{},
	}
}

// BaseURL returns the configured server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Emotions fetches all emotion categories.
func (c *Client) Emotions(ctx context.Context) ([]domain.Emotion, error) {
	var out []domain.Emotion
	if err := c.get(ctx, "/api/emotions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Moods fetches the moods under one emotion.
func (c *Client) Moods(ctx context.Context, emotionID string) ([]domain.Mood, error) {
	var out []domain.Mood
	if err := c.get(ctx, "/api/moods/"+emotionID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Guidance fetches the guidance entry for one mood.
func (c *Client) Guidance(ctx context.Context, moodID string) (domain.Guidance, error) {
	var out domain.Guidance
	if err := c.get(ctx, "/api/guidance/"+moodID, &out); err != nil {
		return domain.Guidance{}, err
	}
	return out, nil
}

// Chapters fetches all chapters in ascending chapter order.
func (c *Client) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	var out []domain.Chapter
	if err := c.get(ctx, "/api/chapters", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Chapter fetches one chapter by number.
func (c *Client) Chapter(ctx context.Context, number int) (domain.Chapter, error) {
	var out domain.Chapter
	if err := c.get(ctx, "/api/chapters/"+strconv.Itoa(number), &out); err != nil {
		return domain.Chapter{}, err
	}
	return out, nil
}

// get performs one GET and decodes the body into dest.
func (c *Client) get(ctx context.Context, path string, dest any) error {
	if c.baseURL == "" {
		return domainerrors.Configuration("server address is not set; set SHLOKA_API_URL or --api")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeConfiguration, fmt.Sprintf("invalid server address %q", c.baseURL))
	}
	req.Header.Set("Accept", "application/json")
	if c.installID != "" {
		req.Header.Set(installIDHeader, c.installID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeNetwork, "reading response failed")
	}

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeDataIntegrity, "response for %s does not match the expected shape", path)
	}

	return nil
}

// classifyTransport maps a transport-level failure onto the error
// taxonomy: deadline hits are TIMEOUT, everything else connection-level
// is NETWORK.
func classifyTransport(err error) *domainerrors.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrTimeout.WithCause(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domainerrors.ErrTimeout.WithCause(err)
	}
	if errors.Is(err, context.Canceled) {
		return domainerrors.Wrap(err, domainerrors.CodeNetwork, "request canceled")
	}
	return domainerrors.Wrap(err, domainerrors.CodeNetwork, "connection failed")
}

// errorBody is the coded error shape the server produces.
type errorBody struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classifyStatus maps a non-200 response onto the taxonomy. The server's
// coded body wins when present — that is what keeps DATA_INTEGRITY
// (broken relation) distinguishable from a plain 500 — with the HTTP
// status as the fallback for proxies and foreign servers.
func classifyStatus(status int, body []byte) *domainerrors.Error {
	code := domainerrors.CodeFromHTTPStatus(status)
	message := fmt.Sprintf("server responded with status %d", status)

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Code != "" {
		if known(domainerrors.Code(eb.Code)) {
			code = domainerrors.Code(eb.Code)
		}
		if eb.Message != "" {
			message = eb.Message
		}
	}

	return &domainerrors.Error{Code: code, Message: message}
}

func known(c domainerrors.Code) bool {
	switch c {
	case domainerrors.CodeConfiguration, domainerrors.CodeTimeout,
		domainerrors.CodeNetwork, domainerrors.CodeNotFound,
		domainerrors.CodeDataIntegrity, domainerrors.CodeValidation,
		domainerrors.CodeRateLimited, domainerrors.CodeUnavailable,
		domainerrors.CodeInternal:
		return true
	}
	return false
}
