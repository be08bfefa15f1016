package admin

import (
	"fmt"
	"strings"

	"agrofarm-backend/internal/audit"
	"agrofarm-backend/internal/auth"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UpdateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Password string `json:"password"` // optional; blank keeps the current one
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("id").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}
		return c.JSON(users)
	}
}

// GET /api/admin/users/:id
func GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return c.JSON(user)
	}
}

// PUT /api/admin/users/:id
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		before := user

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username == "" {
			return fiber.NewError(fiber.StatusBadRequest, "username is required")
		}
		role := models.UserRole(body.Role)
		if role != models.RoleAdmin && role != models.RoleUser {
			return fiber.NewError(fiber.StatusBadRequest, "role must be 'admin' or 'user'")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("username = ? AND id <> ?", body.Username, user.ID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Username already exists")
		}

		user.Username = body.Username
		user.Role = role
		if body.Password != "" {
			if len(body.Password) < 6 {
				return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
			}
			user.PasswordHash = string(hash)
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update user")
		}

		audit.Write(c, "user", fmt.Sprint(user.ID), models.AuditActionUpdate,
			fmt.Sprintf("User updated: %s", user.Username), before, user)

		return c.JSON(user)
	}
}

// DELETE /api/admin/users/:id
// Admins cannot delete their own account.
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		if currentID, err := auth.CurrentUserID(c); err == nil && currentID == user.ID {
			return fiber.NewError(fiber.StatusBadRequest, "You cannot delete your own account")
		}

		if err := database.DB.Delete(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete user")
		}

		audit.Write(c, "user", fmt.Sprint(user.ID), models.AuditActionDelete,
			fmt.Sprintf("User deleted: %s", user.Username), user, nil)

		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	}
}
