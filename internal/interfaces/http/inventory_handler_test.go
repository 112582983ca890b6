package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createItem(t *testing.T, env *testEnv, admin, body string) string {
	t.Helper()
	resp := env.do(t, jsonRequest(http.MethodPost, "/api/inventory", admin, body))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	require.Equal(t, true, out["success"])
	id, _ := out["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestInventoryAPI_CrearListarEliminar(t *testing.T) {
	env := newTestEnv(t, 10)
	admin := tokenForRole(t, "admin", "admin")

	id := createItem(t, env, admin, `{"name":"Ibuprofeno","category":"Analgésicos","location":"A1","qty":"5","reorder":10,"expiry":"2026-04-01"}`)
	createItem(t, env, admin, `{"name":"Gasas","qty":50}`)

	resp := env.do(t, jsonRequest(http.MethodGet, "/api/inventory", admin, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[[]map[string]any](t, resp)
	require.Len(t, items, 2)
	assert.Equal(t, id, items[0]["id"])
	assert.Equal(t, "5", items[0]["qty"])
	assert.Equal(t, "2026-04-01", items[0]["expiry"])
	assert.Equal(t, "", items[1]["expiry"])

	resp = env.do(t, jsonRequest(http.MethodGet, "/api/inventory?q=gas", admin, ""))
	assert.Len(t, decode[[]map[string]any](t, resp), 1)

	resp = env.do(t, jsonRequest(http.MethodDelete, "/api/inventory/"+id, admin, ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode[map[string]any](t, resp)["success"])

	resp = env.do(t, jsonRequest(http.MethodGet, "/api/inventory", admin, ""))
	assert.Len(t, decode[[]map[string]any](t, resp), 1)
}

func TestInventoryAPI_ListaVaciaEsArreglo(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, jsonRequest(http.MethodGet, "/api/inventory", tokenForRole(t, "viewer", "user"), ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, readBody(t, resp))
}

func TestInventoryAPI_CrearSinCantidad_Retorna400(t *testing.T) {
	env := newTestEnv(t, 10)
	admin := tokenForRole(t, "admin", "admin")

	for _, body := range []string{
		`{"name":"Gasas"}`,
		`{"name":"Gasas","qty":""}`,
		`{"name":"","qty":3}`,
	} {
		resp := env.do(t, jsonRequest(http.MethodPost, "/api/inventory", admin, body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		out := decode[map[string]any](t, resp)
		assert.Equal(t, false, out["success"])
		assert.NotEmpty(t, out["error"])
	}
}

func TestInventoryAPI_FechaInvalida_Retorna400(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, jsonRequest(http.MethodPost, "/api/inventory", tokenForRole(t, "admin", "admin"),
		`{"name":"Gasas","qty":1,"expiry":"mañana"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "INVALID_DATE")
}

func TestInventoryAPI_ViewerNoPuedeEscribir(t *testing.T) {
	env := newTestEnv(t, 10)
	viewer := tokenForRole(t, "viewer", "user")

	resp := env.do(t, jsonRequest(http.MethodPost, "/api/inventory", viewer, `{"name":"X","qty":1}`))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, jsonRequest(http.MethodDelete, "/api/inventory/abc", viewer, ""))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInventoryAPI_SinSesion_Retorna401(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, jsonRequest(http.MethodGet, "/api/inventory", "", ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInventoryAPI_UpdateParcial(t *testing.T) {
	env := newTestEnv(t, 10)
	admin := tokenForRole(t, "admin", "admin")
	id := createItem(t, env, admin, `{"name":"Ibuprofeno","category":"Analgésicos","qty":5,"reorder":10}`)

	resp := env.do(t, jsonRequest(http.MethodPut, "/api/inventory/"+id, admin, `{"qty":"12"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, jsonRequest(http.MethodGet, "/api/inventory", admin, ""))
	items := decode[[]map[string]any](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "12", items[0]["qty"])
	assert.Equal(t, "Analgésicos", items[0]["category"])

	resp = env.do(t, jsonRequest(http.MethodPut, "/api/inventory/no-existe", admin, `{"qty":1}`))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventoryAPI_Summary(t *testing.T) {
	env := newTestEnv(t, 10)
	admin := tokenForRole(t, "admin", "admin")
	createItem(t, env, admin, `{"name":"A","category":"X","qty":5,"reorder":10,"expiry":"2026-04-01"}`)
	createItem(t, env, admin, `{"name":"B","category":"Y","qty":50,"reorder":10,"expiry":"2026-03-01"}`)

	resp := env.do(t, jsonRequest(http.MethodGet, "/api/inventory/summary", admin, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		`{"total":2,"low_stock":1,"expiring_soon":1,"expired":1,"categories":2,"date":"2026-03-10"}`,
		readBody(t, resp))
}

func TestInventoryAPI_ReportePDF(t *testing.T) {
	env := newTestEnv(t, 10)
	admin := tokenForRole(t, "admin", "admin")
	createItem(t, env, admin, `{"name":"A","qty":5}`)

	resp := env.do(t, jsonRequest(http.MethodGet, "/api/inventory/report.pdf?q=a", tokenForRole(t, "viewer", "user"), ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario-2026-03-10.pdf")
	assert.True(t, len(readBody(t, resp)) > 4)
}

func TestAuthAPI_SignInYSignUp(t *testing.T) {
	env := newTestEnv(t, 10)

	resp := env.do(t, jsonRequest(http.MethodPost, "/api/signin", "", `{"username":"admin","password":"admin-pass"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.Equal(t, true, out["success"])
	assert.NotEmpty(t, out["token"])
	user, _ := out["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])

	resp = env.do(t, jsonRequest(http.MethodPost, "/api/signin", "", `{"username":"admin","password":"mal"}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, jsonRequest(http.MethodPost, "/api/signup", "", `{"username":"nuevo","password":"x"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	out = decode[map[string]any](t, resp)
	assert.Equal(t, true, out["success"])
	created, _ := out["user"].(map[string]any)
	assert.Equal(t, "nuevo", created["username"])
	assert.Equal(t, "user", created["role"])

	resp = env.do(t, jsonRequest(http.MethodPost, "/api/signup", "", `{"username":"viewer","password":"x"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, decode[map[string]any](t, resp)["success"])
}
