package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"admin-console/internal/domain"
	"admin-console/internal/session"
)

// Login autentica contra el backend y guarda el token devuelto.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var result domain.LoginResult
	if err := c.Do(ctx, http.MethodPost, "/auth/login", nil, creds, &result); err != nil {
		return domain.LoginResult{}, err
	}
	if result.Token == "" {
		return domain.LoginResult{}, fmt.Errorf("login: empty token in response")
	}
	if err := c.store.Set(ctx, result.Token); err != nil {
		return domain.LoginResult{}, fmt.Errorf("store session: %w", err)
	}
	return result, nil
}

// Logout avisa al backend (sin fallar si no responde) y borra el token local.
// Un 401 aqui no abre el aviso de sesion caducada: el operador ya esta saliendo.
func (c *Client) Logout(ctx context.Context) error {
	hasToken, err := session.HasToken(ctx, c.store)
	if err != nil {
		return err
	}
	if hasToken {
		if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil, false); err != nil && !IsUnauthorized(err) {
			c.logger.Warn("remote logout failed", zap.Error(err))
		}
	}
	return c.store.Clear(ctx)
}

// Me devuelve la cuenta del operador autenticado.
func (c *Client) Me(ctx context.Context) (domain.Account, error) {
	var account domain.Account
	if err := c.Do(ctx, http.MethodGet, "/me", nil, nil, &account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (c *Client) ListAccounts(ctx context.Context, page domain.Pagination) (domain.Page[domain.Account], error) {
	var out domain.Page[domain.Account]
	if err := c.Do(ctx, http.MethodGet, "/accounts", pageQuery(page), nil, &out); err != nil {
		return domain.Page[domain.Account]{}, err
	}
	return out, nil
}

func (c *Client) ListFeedback(ctx context.Context, page domain.Pagination) (domain.Page[domain.Feedback], error) {
	var out domain.Page[domain.Feedback]
	if err := c.Do(ctx, http.MethodGet, "/feedback", pageQuery(page), nil, &out); err != nil {
		return domain.Page[domain.Feedback]{}, err
	}
	return out, nil
}

func pageQuery(p domain.Pagination) url.Values {
	p = p.Normalize()
	return url.Values{
		"page": {strconv.Itoa(p.CurrentPage)},
		"size": {strconv.Itoa(p.PageSize)},
	}
}
