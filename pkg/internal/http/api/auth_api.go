package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rcee-dev/campusvoice/pkg/internal/http/exts"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/rcee-dev/campusvoice/pkg/internal/security"
	"github.com/rcee-dev/campusvoice/pkg/internal/services"
	"github.com/samber/lo"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		RollNumber string `json:"rollNumber" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Department string `json:"department" validate:"required"`
		Year       int    `json:"year" validate:"required,min=1,max=4"`
		Section    string `json:"section" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account := models.Account{
		RollNumber: lo.ToPtr(data.RollNumber),
		Name:       data.Name,
		Department: data.Department,
		Year:       data.Year,
		Section:    data.Section,
		Password:   data.Password,
	}

	account, err := services.RegisterStudent(account)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	token, err := security.IssueToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"token":   token,
		"user":    services.RenderAccount(account),
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
		UserType   string `json:"userType" validate:"required,oneof=student management"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.Authenticate(data.Identifier, data.Password, data.UserType)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	token, err := security.IssueToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    services.RenderAccount(account),
	})
}
