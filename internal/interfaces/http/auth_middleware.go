package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/pkg/jwt"
)

// Locals keys para la sesión en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
	LocalToken    = "token"
)

// bearerOrCookie extrae el token del header Authorization o, si falta, de la cookie de sesión.
func bearerOrCookie(c *fiber.Ctx, cookieName string) (string, string) {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", "INVALID_TOKEN"
		}
		return strings.TrimSpace(parts[1]), ""
	}
	if cookieName != "" {
		return c.Cookies(cookieName), ""
	}
	return "", ""
}

// AuthMiddleware valida el token (Bearer o cookie de sesión) y guarda username y role en c.Locals.
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, code := bearerOrCookie(c, cookieName)
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(code, "formato: Bearer <token>"))
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_TOKEN", "sesión requerida"))
		}
		username, role, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_TOKEN", "token inválido o expirado"))
		}
		setSession(c, username, role, token)
		return c.Next()
	}
}

// SessionGuard protege las páginas HTML: sin cookie válida redirige a la página de login.
func SessionGuard(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Redirect("/", fiber.StatusFound)
		}
		username, role, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			c.ClearCookie(cookieName)
			return c.Redirect("/", fiber.StatusFound)
		}
		setSession(c, username, role, token)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware o SessionGuard.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_ROLE", "el token no incluye rol"))
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "permisos insuficientes"))
	}
}

func setSession(c *fiber.Ctx, username, role, token string) {
	c.Locals(LocalUsername, username)
	c.Locals(LocalRole, role)
	c.Locals(LocalToken, token)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUsername devuelve el usuario de la sesión (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole devuelve el rol de la sesión (después del middleware de auth).
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSession reconstruye la sesión; nil si la petición no pasó por el middleware.
func GetSession(c *fiber.Ctx) *entity.Session {
	username := GetUsername(c)
	if username == "" {
		return nil
	}
	return &entity.Session{Username: username, Role: GetRole(c), Token: localString(c, LocalToken)}
}
