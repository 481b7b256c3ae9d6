package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rcee-dev/campusvoice/pkg/internal/http/api"
	"github.com/rcee-dev/campusvoice/pkg/internal/security"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var IApp *fiber.App

func NewServer() {
	IApp = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnablePrintRoutes:     false,
		ServerHeader:          "CampusVoice",
		AppName:               "CampusVoice",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := err.Error()

			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code == fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
				message = "something went wrong"
			}

			return c.Status(code).JSON(fiber.Map{
				"message": message,
			})
		},
	})

	IApp.Use(security.ContextMiddleware)

	IApp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Campus Complaint System API is running!",
		})
	})

	api.MapAPIs(IApp, "/api")
}

func Listen() {
	if err := IApp.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}
