package http

import (
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/medstock/internal/application/auth"
	"github.com/jhoicas/medstock/internal/application/inventory"
	"github.com/jhoicas/medstock/internal/application/report"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/interfaces/view"
	"github.com/jhoicas/medstock/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	InventoryUC     *inventory.InventoryUseCase
	ReportUC        *report.ReportUseCase
	JWTSecret       string
	Page            PageConfig
	SignInPerMinute int
	Logger          *logger.Logger
}

// Router registra las rutas de la API y de las páginas.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	signInLimit := RateLimit(deps.SignInPerMinute)

	static, _ := fs.Sub(view.Static, "static")
	app.Use("/static", filesystem.New(filesystem.Config{Root: nethttp.FS(static)}))

	// Páginas
	pages := NewPageHandler(deps.AuthUC, deps.InventoryUC, deps.Page, log.Component("pages"))
	app.Get("/", pages.LoginPage)
	app.Post("/login", signInLimit, pages.Login)
	app.Post("/logout", pages.Logout)

	screen := app.Group("/inventory", SessionGuard(deps.JWTSecret, deps.Page.CookieName))
	screen.Get("/", pages.Inventory)
	screen.Get("/rows", pages.Rows)
	screen.Post("/items", RequireRole(entity.RoleAdmin), pages.CreateItem)
	screen.Post("/items/:id/delete", RequireRole(entity.RoleAdmin), pages.DeleteItem)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log.Component("auth"))
	api.Post("/signup", authHandler.SignUp)
	api.Post("/signin", signInLimit, authHandler.SignIn)

	// Inventario (protegido; escritura solo admin)
	inv := api.Group("/inventory", AuthMiddleware(deps.JWTSecret, deps.Page.CookieName))
	invHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC, log.Component("inventory"))
	inv.Get("/", invHandler.List)
	inv.Get("/summary", invHandler.Summary)
	inv.Get("/report.pdf", invHandler.Report)
	inv.Post("/", RequireRole(entity.RoleAdmin), invHandler.Create)
	inv.Put("/:id", RequireRole(entity.RoleAdmin), invHandler.Update)
	inv.Delete("/:id", RequireRole(entity.RoleAdmin), invHandler.Delete)
}
