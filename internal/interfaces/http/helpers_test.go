package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medstock/internal/application/auth"
	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/application/inventory"
	"github.com/jhoicas/medstock/internal/application/report"
	"github.com/jhoicas/medstock/internal/infrastructure/pdf"
	"github.com/jhoicas/medstock/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/medstock/internal/interfaces/http"
	"github.com/jhoicas/medstock/pkg/logger"
	pkgjwt "github.com/jhoicas/medstock/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "medstock-test"
	testCookie    = "medstock_user"
	testExpMin    = 60
)

var testToday = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

type testEnv struct {
	app   *fiber.App
	invUC *inventory.InventoryUseCase
}

func newTestEnv(t *testing.T, signInPerMinute int) *testEnv {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "medstock.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.ApplyMigrations())

	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	require.NoError(t, authUC.EnsureAdmin(context.Background(), "admin", "admin-pass"))
	_, err = authUC.SignUp(context.Background(), dto.SignUpRequest{Username: "viewer", Password: "viewer-pass"})
	require.NoError(t, err)

	invUC := inventory.NewInventoryUseCase(store.Items()).WithClock(func() time.Time { return testToday })
	reportUC := report.NewReportUseCase(invUC, pdf.NewMarotoReportGenerator(), "MedStock")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		InventoryUC:     invUC,
		ReportUC:        reportUC,
		JWTSecret:       testJWTSecret,
		Page:            apphttp.PageConfig{AppName: "MedStock", CookieName: testCookie, SessionTTL: time.Hour},
		SignInPerMinute: signInPerMinute,
		Logger:          logger.Nop(),
	})
	return &testEnv{app: app, invUC: invUC}
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, username, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, username, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func jsonRequest(method, target, token, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func formRequest(target, cookieToken string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookieToken != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookieToken})
	}
	return req
}

func pageRequest(target, cookieToken string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookieToken != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookieToken})
	}
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
