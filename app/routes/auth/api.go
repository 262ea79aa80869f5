package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"personal-management/app/config"
	"personal-management/app/database"
	"personal-management/app/routes/respond"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return respond.ValidationError(c, "Username and password are required")
	}

	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if dbErr := database.Classify(err); dbErr.Kind == database.KindNotFound {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		return respond.Error(c, err)
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Username)
	if err != nil {
		return respond.Error(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return respond.Success(c, fiber.Map{
		"message": "Login successful",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return respond.Success(c, fiber.Map{"message": "Logout successful"})
}

func StatusAPI(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user": fiber.Map{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.ValidationError(c, "Invalid request body")
	}
	if req.NewPassword == "" {
		return respond.ValidationError(c, "New password is required")
	}

	userID := OwnerID(c)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return respond.Error(c, err)
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return respond.ValidationError(c, "Current password is incorrect")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return respond.Error(c, err)
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashed); err != nil {
		return respond.Error(c, err)
	}

	return respond.Success(c, fiber.Map{"message": "Password changed successfully"})
}
