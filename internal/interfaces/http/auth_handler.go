package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medstock/internal/application/auth"
	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/pkg/logger"
)

// AuthHandler maneja registro e inicio de sesión por API.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// SignUp godoc
// @Summary      Registrar usuario (rol user, solo lectura)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "username, password"
// @Success      201   {object}  dto.SignUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "username y password son requeridos"))
	}
	user, err := h.uc.SignUp(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("username", user.Username).Msg("usuario registrado")
	return c.Status(fiber.StatusCreated).JSON(dto.SignUpResponse{Success: true, User: *user})
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "username, password"
// @Success      200   {object}  dto.SignInResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "username y password son requeridos"))
	}
	out, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		h.log.Warn().Str("username", in.Username).Str("ip", c.IP()).Msg("inicio de sesión fallido")
		return writeError(c, err)
	}
	return c.JSON(out)
}
