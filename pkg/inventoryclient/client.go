// Package inventoryclient cliente tipado de la API de inventario.
//
// El cliente es dueño de un Store: Reload trae la lista completa y la reemplaza,
// y las altas y bajas exitosas vuelven a llamar a Reload. Cada petición tiene su
// propio timeout; ListItems reintenta los fallos recuperables con backoff exponencial.
package inventoryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/pkg/logger"
)

// DefaultBackoff espera inicial entre reintentos de ListItems.
const DefaultBackoff = 200 * time.Millisecond

// Client cliente HTTP de la API de inventario.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	store      *Store
	log        *logger.Logger
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client (tests).
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// WithToken fija el token de sesión.
func WithToken(token string) Option { return func(c *Client) { c.token = token } }

// WithTimeout timeout por petición.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

// WithRetries reintentos de ListItems y espera inicial entre ellos.
func WithRetries(n int, initial time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = n
		c.backoff = initial
	}
}

// WithLogger logger para reintentos y fallos.
func WithLogger(l *logger.Logger) Option { return func(c *Client) { c.log = l } }

// New construye el cliente contra baseURL (ej. http://localhost:5000).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    10 * time.Second,
		maxRetries: 3,
		backoff:    DefaultBackoff,
		store:      &Store{},
		log:        logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetToken cambia el token de sesión (después de SignIn).
func (c *Client) SetToken(token string) { c.token = token }

// Store lista de artículos cargada por Reload.
func (c *Client) Store() *Store { return c.store }

// do ejecuta una petición con timeout propio y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar petición: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e dto.ErrorResponse
		if json.Unmarshal(raw, &e) == nil {
			apiErr.Code, apiErr.Message = e.Code, e.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

// ListItems trae la lista completa, reintentando los fallos recuperables.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	op := func() error {
		items = nil
		err := c.do(ctx, http.MethodGet, "/api/inventory", nil, &items)
		if err != nil && !IsRecoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.backoff
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(c.maxRetries, 0))), ctx)

	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Dur("retry_in", wait).Msg("listar inventario falló, reintentando")
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Reload trae la lista y reemplaza el Store. Si falla, el Store queda como estaba.
func (c *Client) Reload(ctx context.Context) error {
	items, err := c.ListItems(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("no se pudo cargar el inventario")
		return err
	}
	c.store.Replace(items)
	return nil
}

// CreateItemInput campos del formulario de alta, como texto.
type CreateItemInput struct {
	Name     string
	Category string
	Location string
	Qty      string
	Reorder  string
	Expiry   string
}

type createItemBody struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
	Qty      string `json:"qty"`
	Reorder  string `json:"reorder,omitempty"`
	Expiry   string `json:"expiry"`
}

// CreateItem valida presencia de name y qty, envía el alta y recarga la lista.
// Devuelve el id asignado por el servidor; si solo falla la recarga el error envuelve ErrReloadFailed y el id es válido.
func (c *Client) CreateItem(ctx context.Context, in CreateItemInput) (string, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Qty) == "" {
		return "", ErrMissingFields
	}
	var res dto.SuccessResponse
	err := c.do(ctx, http.MethodPost, "/api/inventory", createItemBody{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Location: strings.TrimSpace(in.Location),
		Qty:      strings.TrimSpace(in.Qty),
		Reorder:  strings.TrimSpace(in.Reorder),
		Expiry:   strings.TrimSpace(in.Expiry),
	}, &res)
	if err != nil {
		c.log.Warn().Err(err).Str("name", in.Name).Msg("alta rechazada")
		return "", err
	}
	if !res.Success {
		return "", ErrSaveRejected
	}
	if err := c.Reload(ctx); err != nil {
		return res.ID, fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return res.ID, nil
}

// Confirmer pregunta al usuario si de verdad quiere eliminar el artículo.
type Confirmer func(id string) bool

// DeleteItem pide confirmación; si se declina (o confirm es nil) no envía nada.
// Tras una baja exitosa recarga la lista.
func (c *Client) DeleteItem(ctx context.Context, id string, confirm Confirmer) error {
	if confirm == nil || !confirm(id) {
		return ErrDeleteDeclined
	}
	if err := c.do(ctx, http.MethodDelete, "/api/inventory/"+url.PathEscape(id), nil, nil); err != nil {
		c.log.Error().Err(err).Str("id", id).Msg("eliminar artículo")
		return err
	}
	if err := c.Reload(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return nil
}

// SignIn inicia sesión, guarda el token en el cliente y devuelve la sesión.
func (c *Client) SignIn(ctx context.Context, username, password string) (*entity.Session, error) {
	var res dto.SignInResponse
	if err := c.do(ctx, http.MethodPost, "/api/signin", dto.SignInRequest{Username: username, Password: password}, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &entity.Session{Username: res.User.Username, Role: res.User.Role, Token: res.Token}, nil
}

// Summary resumen calculado por el servidor.
func (c *Client) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	var res dto.SummaryResponse
	if err := c.do(ctx, http.MethodGet, "/api/inventory/summary", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
