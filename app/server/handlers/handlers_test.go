package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/thejerf/abtime"
	"go.uber.org/zap/zaptest"

	"todo-service/app/server/jwt"
	"todo-service/app/server/testutil"
)

type fixture struct {
	e     *echo.Echo
	app   *App
	clock *abtime.ManualTime
	mr    *miniredis.Miniredis
}

func newFixture(t *testing.T, allowAdminRegistration bool) *fixture {
	t.Helper()

	clock := abtime.NewManualAtTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	j, err := jwt.New("handlers-test-key", jwt.WithClock(clock))
	require.NoError(t, err)

	rdb, mr := testutil.Redis(t)
	app, err := NewApp(zaptest.NewLogger(t), testutil.OpenDB(t), rdb, j, testutil.Hasher(), allowAdminRegistration)
	require.NoError(t, err)

	e := echo.New()
	app.RegisterHandlers(e)

	return &fixture{e: e, app: app, clock: clock, mr: mr}
}

func (f *fixture) do(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) register(t *testing.T, username, password, role string) {
	t.Helper()
	rec := f.do(http.MethodPost, "/auth/", "", map[string]string{
		"username":   username,
		"email":      username + "@example.com",
		"first_name": "First",
		"last_name":  "Last",
		"password":   password,
		"role":       role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (f *fixture) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := f.postForm("/auth/token", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "bearer", res.TokenType)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

// user 注册并登录一个账号，返回令牌
func (f *fixture) user(t *testing.T, username, role string) string {
	t.Helper()
	f.register(t, username, "pw-"+username, role)
	return f.login(t, username, "pw-"+username)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
