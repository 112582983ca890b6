package http_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages_InventarioSinSesion_RedirigeALogin(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, pageRequest("/inventory/", ""))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestPages_LoginCorrecto_FijaCookieYRedirige(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, formRequest("/login", "", url.Values{"username": {"admin"}, "password": {"admin-pass"}}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/inventory/", resp.Header.Get("Location"))

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)

	// con la cookie emitida la pantalla carga
	page := env.do(t, pageRequest("/inventory/", session.Value))
	assert.Equal(t, http.StatusOK, page.StatusCode)
}

func TestPages_LoginIncorrecto_MuestraError(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, formRequest("/login", "", url.Values{"username": {"admin"}, "password": {"otra"}}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "credenciales inválidas")
}

func TestPages_LoginConSesionValida_SaltaAlInventario(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, pageRequest("/", tokenForRole(t, "viewer", "user")))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/inventory/", resp.Header.Get("Location"))

	resp = env.do(t, pageRequest("/", ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `action="/login"`)
}

func TestPages_Logout_BorraCookie(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, formRequest("/logout", tokenForRole(t, "viewer", "user"), url.Values{}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	found := false
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			found = true
			assert.Empty(t, c.Value)
		}
	}
	assert.True(t, found)
}

func TestPages_Viewer_SinControlesDeEscritura(t *testing.T) {
	env := newTestEnv(t, 10)
	createItem(t, env, tokenForRole(t, "admin", "admin"), `{"name":"Ibuprofeno","qty":5,"reorder":10}`)

	resp := env.do(t, pageRequest("/inventory/", tokenForRole(t, "viewer", "user")))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Ibuprofeno")
	assert.Contains(t, body, "VIEW ONLY")
	assert.NotContains(t, body, `data-action="delete"`)
	assert.NotContains(t, body, `id="addBtn"`)
}

func TestPages_Admin_CreaYEliminaDesdeFormulario(t *testing.T) {
	env := newTestEnv(t, 10)
	admin := tokenForRole(t, "admin", "admin")

	resp := env.do(t, formRequest("/inventory/items", admin, url.Values{
		"name": {"Gasas"}, "category": {"Insumos"}, "qty": {"40"}, "reorder": {""}, "expiry": {""},
	}))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	items, err := env.invUC.List(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Reorder.IsZero())

	resp = env.do(t, formRequest("/inventory/items/"+items[0].ID+"/delete", admin, url.Values{}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	items, err = env.invUC.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPages_FormularioSinCantidad_MuestraErrorYNoGuarda(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, formRequest("/inventory/items", tokenForRole(t, "admin", "admin"), url.Values{"name": {"Gasas"}}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Error saving item")

	items, err := env.invUC.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPages_ViewerNoPuedeCrearPorFormulario(t *testing.T) {
	env := newTestEnv(t, 10)
	resp := env.do(t, formRequest("/inventory/items", tokenForRole(t, "viewer", "user"), url.Values{"name": {"X"}, "qty": {"1"}}))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPages_FilasBusquedaSinResultados(t *testing.T) {
	env := newTestEnv(t, 10)
	createItem(t, env, tokenForRole(t, "admin", "admin"), `{"name":"Ibuprofeno","qty":5}`)

	resp := env.do(t, pageRequest("/inventory/rows?q=zzz", tokenForRole(t, "viewer", "user")))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Equal(t, 1, strings.Count(body, "<tr"))
	assert.Contains(t, body, "No items found.")
}

func TestPages_SignInLimitado(t *testing.T) {
	env := newTestEnv(t, 1)
	form := url.Values{"username": {"admin"}, "password": {"mal"}}
	first := env.do(t, formRequest("/login", "", form))
	assert.Equal(t, http.StatusUnauthorized, first.StatusCode)
	second := env.do(t, formRequest("/login", "", form))
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
}
