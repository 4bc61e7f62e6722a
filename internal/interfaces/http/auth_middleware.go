package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/pkg/jwt"
)

// Locals keys de los claims en Fiber.
const (
	LocalUserID  = "user_id"
	LocalStoreID = "store_id"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga UserID, StoreID y Role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		tokenString, ok := bearer(authHeader)
		if !ok {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth carga los claims si hay un token válido; sin token o con token inválido sigue como anónimo.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString, ok := bearer(c.Get("Authorization")); ok && tokenString != "" {
			if claims, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		return c.Next()
	}
}

func bearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalStoreID, claims.StoreID)
	c.Locals(LocalRole, claims.Role)
}

// RequireRole exige que el rol del token esté entre los permitidos. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no incluye rol")
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin permiso para este recurso")
	}
}

func local(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return local(c, LocalUserID) }

// GetStoreID devuelve la tienda asociada a la sesión; vacío si aún no tiene.
func GetStoreID(c *fiber.Ctx) string { return local(c, LocalStoreID) }

func GetRole(c *fiber.Ctx) string { return local(c, LocalRole) }

// ActorFrom arma el actor de los use cases con los claims del token.
func ActorFrom(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{UserID: GetUserID(c), StoreID: GetStoreID(c), Role: GetRole(c)}
}

// optionalActor nil si la petición es anónima.
func optionalActor(c *fiber.Ctx) *usecase.Actor {
	if GetUserID(c) == "" {
		return nil
	}
	a := ActorFrom(c)
	return &a
}
