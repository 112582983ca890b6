package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/inventory"
)

//go:embed templates/*.html
var templateFS embed.FS

// Static hoja de estilos servida en /static.
//
//go:embed static
var Static embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

// RenderRows escribe solo las filas <tr> de la tabla (usado por la búsqueda en vivo).
func RenderRows(w io.Writer, model TableModel) error {
	return templates.ExecuteTemplate(w, "rows", model)
}

// PageData datos de la pantalla de inventario.
type PageData struct {
	AppName  string
	Username string
	Access   entity.Access
	Query    string
	Summary  inventory.Summary
	Table    TableModel
	// Error mensaje no bloqueante (fallo al cargar o al guardar); la tabla se reemplaza
	// por el estado de error solo cuando LoadFailed es true.
	Error      string
	LoadFailed bool
	Today      string
}

// IsAdmin atajo para las plantillas.
func (p PageData) IsAdmin() bool { return p.Access.CanWrite() }

// NewPageData arma la pantalla a partir de la lista completa y la lista filtrada.
func NewPageData(appName string, session *entity.Session, query string, all, visible []entity.InventoryItem, today time.Time) PageData {
	access := entity.AccessFor(session)
	username := ""
	if session != nil {
		username = session.Username
	}
	return PageData{
		AppName:  appName,
		Username: username,
		Access:   access,
		Query:    query,
		Summary:  inventory.Summarize(all, today),
		Table:    Table(visible, access, today),
		Today:    entity.DateOf(today).String(),
	}
}

// RenderPage escribe la pantalla completa.
func RenderPage(w io.Writer, data PageData) error {
	return templates.ExecuteTemplate(w, "page", data)
}

// LoginData datos de la página de inicio de sesión.
type LoginData struct {
	AppName string
	Error   string
}

// RenderLogin escribe la página de inicio de sesión.
func RenderLogin(w io.Writer, data LoginData) error {
	return templates.ExecuteTemplate(w, "login", data)
}
