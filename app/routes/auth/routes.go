package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"personal-management/app/config"
)

func SetupAuthRoutes(app *fiber.App) {
	web := app.Group("/auth")
	web.Get("/login", ShowLoginPage)

	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
	api.Get("/status", StatusAPI)
	api.Post("/change-password", RequireAuth, ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in users go straight to the dashboard
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Personal Management",
	}, "")
}

func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("jwt_token"); token != "" {
		return token
	}
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// SessionMiddleware resolves the owner for the request. With a valid token
// it uses the token's user; otherwise it falls back to the default owner.
// The fallback lives here, at the API boundary, and nowhere else.
func SessionMiddleware(c *fiber.Ctx) error {
	ownerID := config.DefaultOwnerID
	if token := tokenFromRequest(c); token != "" {
		if claims, err := ValidateJWT(token); err == nil {
			ownerID = claims.UserID
			c.Locals("username", claims.Username)
		}
	}
	c.Locals("owner_id", ownerID)
	return c.Next()
}

// RequireAuth rejects requests without a valid token. API calls get a 401
// JSON body; page requests are redirected to the login form.
func RequireAuth(c *fiber.Ctx) error {
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	token := tokenFromRequest(c)
	if token == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("owner_id", claims.UserID)
	c.Locals("username", claims.Username)
	return c.Next()
}

// OwnerID reads the owner resolved by the middleware, defaulting when the
// handler is reached without it (e.g. in tests).
func OwnerID(c *fiber.Ctx) int {
	if id, ok := c.Locals("owner_id").(int); ok {
		return id
	}
	return config.DefaultOwnerID
}
