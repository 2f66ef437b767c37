// Package apiclient es el cliente HTTP de la consola contra el backend de
// administracion.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"admin-console/internal/session"
)

// AuthHeader lleva el token tal cual, sin prefijo.
const AuthHeader = "Authentication"

const maxErrorBody = 64 << 10

// Client envuelve un *http.Client con base URL fija. Cada peticion pasa por
// interceptRequest y cada respuesta por interceptResponse.
type Client struct {
	baseURL string
	client  *http.Client
	store   session.Store
	expiry  *SessionExpiry
	logger  *zap.Logger
}

// NewClient construye el cliente. httpClient nil usa un cliente con timeout de 30s.
func NewClient(baseURL string, httpClient *http.Client, store session.Store, expiry *SessionExpiry, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		store:   store,
		expiry:  expiry,
		logger:  logger,
	}
}

// BaseURL devuelve la direccion base configurada.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do envia una peticion JSON y decodifica la respuesta en out si no es nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.do(ctx, method, path, query, body, out, true)
}

// do es Do con la recuperacion de sesion opcional; sin ella un 401 solo se devuelve.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, recoverSession bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request: %w", ErrRequest, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req, err = c.interceptRequest(req)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.interceptResponse(req, resp, recoverSession); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// interceptRequest adjunta el token guardado. Si leerlo falla, la peticion
// no se envia.
func (c *Client) interceptRequest(req *http.Request) (*http.Request, error) {
	if c.store == nil {
		return req, nil
	}
	token, err := c.store.Get(req.Context())
	switch {
	case errors.Is(err, session.ErrNoToken):
		return req, nil
	case err != nil:
		return nil, fmt.Errorf("%w: read session token: %w", ErrRequest, err)
	}
	req.Header.Set(AuthHeader, token)
	return req, nil
}

// interceptResponse deja pasar los 2xx/3xx. Un 401 dispara la recuperacion
// de sesion antes de devolver el error; el resto se devuelve tal cual.
func (c *Client) interceptResponse(req *http.Request, resp *http.Response, recoverSession bool) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	statusErr := &StatusError{
		Method:     req.Method,
		Path:       req.URL.Path,
		StatusCode: resp.StatusCode,
		Message:    readErrorMessage(resp.Body),
	}

	if resp.StatusCode == http.StatusUnauthorized && recoverSession && c.expiry != nil {
		if err := c.expiry.Handle(req.Context()); err != nil {
			c.logger.Error("session expiry recovery failed", zap.Error(err))
		}
	}
	return statusErr
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// readErrorMessage extrae {"error": "..."} o, si no es JSON, el texto plano.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
