package handler

import (
	"errors"

	todoerror "github.com/VeerKakar17/calendar-todo-list/internal/errors"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/dto"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/service"
	"github.com/VeerKakar17/calendar-todo-list/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
	cookies     *CookieWriter
}

func NewAuthHandler(userService *service.UserService, cookies *CookieWriter) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cookies:     cookies,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username, email and password are required",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, todoerror.ErrUsernameTaken) || errors.Is(err, todoerror.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	pair, err := h.userService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, todoerror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	h.cookies.SetAccessToken(c, pair.AccessToken)
	h.cookies.SetRefreshToken(c, pair.RefreshToken)

	return c.JSON(fiber.Map{"message": "logged in successfully"})
}

// GetUser answers for the authenticated subject only. The user_id query
// parameter is accepted for compatibility but deliberately ignored, so a
// session for one user can never read another.
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	subjectID, _ := c.Locals(constant.SubjectKey).(string)

	user, err := h.userService.GetByID(c.Context(), subjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": todoerror.ErrUserNotFound.Error(),
		})
	}

	return c.JSON(dto.NewUserOutput(user))
}
