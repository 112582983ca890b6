package http

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/medstock/internal/application/auth"
	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/application/inventory"
	"github.com/jhoicas/medstock/internal/domain"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/interfaces/view"
	"github.com/jhoicas/medstock/pkg/logger"
)

// PageConfig parámetros de la cookie de sesión y nombre visible de la app.
type PageConfig struct {
	AppName      string
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
}

// PageHandler pantallas HTML: login, logout e inventario.
type PageHandler struct {
	auth *auth.AuthUseCase
	inv  *inventory.InventoryUseCase
	cfg  PageConfig
	log  *logger.Logger
}

// NewPageHandler construye el handler de páginas.
func NewPageHandler(authUC *auth.AuthUseCase, invUC *inventory.InventoryUseCase, cfg PageConfig, log *logger.Logger) *PageHandler {
	return &PageHandler{auth: authUC, inv: invUC, cfg: cfg, log: log}
}

func html(c *fiber.Ctx, status int, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// LoginPage GET /. Con una sesión válida salta directo al inventario.
func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	if token := c.Cookies(h.cfg.CookieName); token != "" {
		if _, err := h.auth.ParseSession(token); err == nil {
			return c.Redirect("/inventory/", fiber.StatusFound)
		}
	}
	return html(c, fiber.StatusOK, func(b *bytes.Buffer) error {
		return view.RenderLogin(b, view.LoginData{AppName: h.cfg.AppName})
	})
}

// Login POST /login (formulario). Éxito: cookie de sesión y redirección al inventario.
func (h *PageHandler) Login(c *fiber.Ctx) error {
	out, err := h.auth.SignIn(c.UserContext(), dto.SignInRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		status, body := errorStatus(err)
		if status == fiber.StatusInternalServerError {
			h.log.Error().Err(err).Msg("login")
		}
		return html(c, status, func(b *bytes.Buffer) error {
			return view.RenderLogin(b, view.LoginData{AppName: h.cfg.AppName, Error: body.Message})
		})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.log.Info().Str("username", out.User.Username).Str("role", out.User.Role).Msg("sesión iniciada")
	return c.Redirect("/inventory/", fiber.StatusSeeOther)
}

// Logout POST /logout: borra la sesión y vuelve al login.
func (h *PageHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// screen arma la página; si la carga falla devuelve la pantalla en estado de error.
func (h *PageHandler) screen(c *fiber.Ctx, query string) (view.PageData, error) {
	session := GetSession(c)
	s, err := h.inv.LoadScreen(c.UserContext(), query)
	if err != nil {
		h.log.Error().Err(err).Msg("cargar inventario")
		return view.PageData{
			AppName:    h.cfg.AppName,
			Username:   GetUsername(c),
			Access:     entity.AccessFor(session),
			Query:      query,
			Error:      "Could not load inventory. Please try again.",
			LoadFailed: true,
		}, err
	}
	return view.NewPageData(h.cfg.AppName, session, s.Query, s.All, s.Visible, s.Today), nil
}

// Inventory GET /inventory/?q= pantalla completa.
func (h *PageHandler) Inventory(c *fiber.Ctx) error {
	data, err := h.screen(c, c.Query("q"))
	status := fiber.StatusOK
	if err != nil {
		status = fiber.StatusBadGateway
	}
	return html(c, status, func(b *bytes.Buffer) error { return view.RenderPage(b, data) })
}

// Rows GET /inventory/rows?q= solo el cuerpo de la tabla (búsqueda en vivo).
func (h *PageHandler) Rows(c *fiber.Ctx) error {
	s, err := h.inv.LoadScreen(c.UserContext(), c.Query("q"))
	if err != nil {
		h.log.Error().Err(err).Msg("cargar inventario")
		return c.Status(fiber.StatusBadGateway).SendString("")
	}
	model := view.Table(s.Visible, entity.AccessFor(GetSession(c)), s.Today)
	return html(c, fiber.StatusOK, func(b *bytes.Buffer) error { return view.RenderRows(b, model) })
}

// formQuantity "" significa no informado; cualquier otro valor debe ser numérico.
func formQuantity(raw string) (dto.Quantity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dto.Quantity{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return dto.Quantity{}, fmt.Errorf("%w: la cantidad debe ser numérica", domain.ErrInvalidInput)
	}
	return dto.QuantityOf(d), nil
}

// CreateItem POST /inventory/items (formulario del modal, solo admin).
// Si el guardado falla la pantalla se vuelve a dibujar con el error; la lista no cambia.
func (h *PageHandler) CreateItem(c *fiber.Ctx) error {
	in := dto.CreateItemRequest{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Location: c.FormValue("location"),
		Expiry:   c.FormValue("expiry"),
	}
	var formErr error
	if in.Qty, formErr = formQuantity(c.FormValue("qty")); formErr == nil {
		in.Reorder, formErr = formQuantity(c.FormValue("reorder"))
	}
	if formErr == nil {
		item, err := h.inv.Create(c.UserContext(), in)
		if err == nil {
			h.log.Info().Str("id", item.ID).Str("user", GetUsername(c)).Msg("artículo creado")
			return c.Redirect("/inventory/", fiber.StatusSeeOther)
		}
		formErr = err
	}

	h.log.Warn().Err(formErr).Str("user", GetUsername(c)).Msg("alta de artículo rechazada")
	status, msg := fiber.StatusBadRequest, "Error saving item: "+formErr.Error()
	if !isDomainError(formErr) {
		status, msg = fiber.StatusInternalServerError, "Error saving item."
	}
	data, _ := h.screen(c, "")
	data.Error = msg
	return html(c, status, func(b *bytes.Buffer) error { return view.RenderPage(b, data) })
}

// DeleteItem POST /inventory/items/:id/delete (solo admin). La confirmación la pide el navegador.
func (h *PageHandler) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.inv.Delete(c.UserContext(), id); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("eliminar artículo")
		data, _ := h.screen(c, "")
		data.Error = "Error deleting item."
		status, _ := errorStatus(err)
		return html(c, status, func(b *bytes.Buffer) error { return view.RenderPage(b, data) })
	}
	h.log.Info().Str("id", id).Str("user", GetUsername(c)).Msg("artículo eliminado")
	return c.Redirect("/inventory/", fiber.StatusSeeOther)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidInput, domain.ErrInvalidDate, domain.ErrNotFound, domain.ErrDuplicate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
