package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"admin-console/internal/domain"
	"admin-console/internal/service"
)

type mockAdminRepo struct {
	byID map[string]domain.Admin
}

func (m *mockAdminRepo) Create(_ context.Context, admin domain.Admin) error {
	m.byID[admin.ID] = admin
	return nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (domain.Admin, error) {
	admin, ok := m.byID[id]
	if !ok {
		return domain.Admin{}, pgx.ErrNoRows
	}
	return admin, nil
}

func (m *mockAdminRepo) GetByUsername(_ context.Context, username string) (domain.Admin, error) {
	for _, admin := range m.byID {
		if admin.Username == username {
			return admin, nil
		}
	}
	return domain.Admin{}, pgx.ErrNoRows
}

type mockAccountRepo struct {
	items      []domain.Account
	lastOffset int
}

func (m *mockAccountRepo) Create(_ context.Context, a domain.Account) error {
	m.items = append(m.items, a)
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (domain.Account, error) {
	for _, a := range m.items {
		if a.AccountID == id {
			return a, nil
		}
	}
	return domain.Account{}, pgx.ErrNoRows
}

func (m *mockAccountRepo) List(_ context.Context, limit, offset int) ([]domain.Account, error) {
	m.lastOffset = offset
	if offset < 0 {
		return nil, errors.New("OFFSET must not be negative")
	}
	if offset >= len(m.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[offset:end], nil
}

func (m *mockAccountRepo) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type mockFeedbackRepo struct {
	err error
}

func (m *mockFeedbackRepo) Create(context.Context, domain.Feedback) error { return nil }

func (m *mockFeedbackRepo) List(context.Context, int, int) ([]domain.Feedback, error) {
	return nil, m.err
}

func (m *mockFeedbackRepo) Count(context.Context) (int64, error) { return 0, m.err }

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

type apiFixture struct {
	engine   *gin.Engine
	jwtSvc   *service.JWTService
	authServ *service.AuthService
	accounts *mockAccountRepo
	feedback *mockFeedbackRepo
}

func newAPIFixture(t *testing.T, limiter service.LoginRateLimiter) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	admins := &mockAdminRepo{byID: make(map[string]domain.Admin)}
	accounts := &mockAccountRepo{}
	feedback := &mockFeedbackRepo{}
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	authServ := service.NewAuthService(logger, admins, jwtSvc, limiter)

	if _, err := authServ.CreateAdmin(context.Background(), "root", "Root", "correct-horse"); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	engine := NewRouter(
		logger,
		NewMetrics(),
		jwtSvc,
		NewAuthHandler(logger, authServ),
		NewDirectoryHandler(logger, service.NewDirectoryService(accounts, feedback)),
	)
	return &apiFixture{engine: engine, jwtSvc: jwtSvc, authServ: authServ, accounts: accounts, feedback: feedback}
}

func (f *apiFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(AuthenticationHeader, token)
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) login(t *testing.T) string {
	t.Helper()
	rec := f.do(http.MethodPost, "/auth/login", "", domain.Credentials{Username: "root", Password: "correct-horse"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result domain.LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if result.Token == "" || result.ExpiresIn <= 0 {
		t.Fatalf("unexpected login result: %+v", result)
	}
	return result.Token
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	f := newAPIFixture(t, nil)

	rec := f.do(http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}

	rec = f.do(http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `admin_api_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Fatalf("expected request counter for /health, got:\n%s", rec.Body.String())
	}
}

func TestAuthHandler_LoginInvalidCredentialsIsNot401(t *testing.T) {
	f := newAPIFixture(t, nil)

	rec := f.do(http.MethodPost, "/auth/login", "", domain.Credentials{Username: "root", Password: "wrong-password"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = f.do(http.MethodPost, "/auth/login", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on empty body, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginRateLimited(t *testing.T) {
	f := newAPIFixture(t, denyAll{})

	rec := f.do(http.MethodPost, "/auth/login", "", domain.Credentials{Username: "root", Password: "correct-horse"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	f := newAPIFixture(t, nil)
	token := f.login(t)

	rec := f.do(http.MethodGet, "/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d", rec.Code)
	}
	var me domain.Account
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Nickname != "Root" || me.AccountID == "" {
		t.Fatalf("unexpected me: %+v", me)
	}

	rec = f.do(http.MethodPost, "/auth/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from logout, got %d", rec.Code)
	}

	rec = f.do(http.MethodGet, "/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestDirectoryHandler_ListAccounts(t *testing.T) {
	f := newAPIFixture(t, nil)
	for _, id := range []string{"a1", "a2", "a3"} {
		_ = f.accounts.Create(context.Background(), domain.Account{AccountID: id, Nickname: "n-" + id})
	}
	token := f.login(t)

	rec := f.do(http.MethodGet, "/accounts?page=1&size=2", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var page domain.Page[domain.Account]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Items) != 2 || page.Pagination.Total != 3 || page.Pagination.PageSize != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestDirectoryHandler_RejectsBadPaginationAndMissingToken(t *testing.T) {
	f := newAPIFixture(t, nil)
	token := f.login(t)

	if rec := f.do(http.MethodGet, "/accounts?page=abc", token, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad page, got %d", rec.Code)
	}
	if rec := f.do(http.MethodGet, "/accounts", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestDirectoryHandler_HugePageReturnsEmptyPage(t *testing.T) {
	f := newAPIFixture(t, nil)
	_ = f.accounts.Create(context.Background(), domain.Account{AccountID: "a1", Nickname: "alice"})
	token := f.login(t)

	rec := f.do(http.MethodGet, "/accounts?page=922337203685477580&size=10", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if f.accounts.lastOffset < 0 {
		t.Fatalf("expected non-negative offset, got %d", f.accounts.lastOffset)
	}
	var page domain.Page[domain.Account]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Items) != 0 || page.Pagination.CurrentPage != domain.MaxPage || page.Pagination.Total != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}

	if rec := f.do(http.MethodGet, "/accounts?page=99999999999999999999", token, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for page beyond int range, got %d", rec.Code)
	}
}

func TestDirectoryHandler_ListFeedbackError(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.feedback.err = errors.New("db down")
	token := f.login(t)

	if rec := f.do(http.MethodGet, "/feedback", token, nil); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
