package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/meraki-social/meraki/pkg/internal"
	"github.com/meraki-social/meraki/pkg/internal/http/admin"
	"github.com/meraki-social/meraki/pkg/internal/http/api"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Meraki",
		AppName:               "Meraki v" + pkg.AppVersion,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             50 * 1024 * 1024,
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
		ErrorHandler:          renderError,
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowMethods: "GET,POST,HEAD,OPTIONS,PUT,DELETE,PATCH",
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowHeaders: "Authorization, Content-Type",
	}))

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")

	return &App{app}
}

// Every response, error included, carries the status and message
// envelope. Internal errors are masked at the edge and logged.
func renderError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when processing request...")
		message = "something went wrong on our side, please try again later"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  code,
		"message": message,
	})
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}
