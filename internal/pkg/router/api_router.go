package router

import (
	"github.com/brightops/BrightOps/app/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	v1.Get("/clients", controllers.HandleListClients)
	v1.Post("/clients", controllers.HandleCreateClient)
	v1.Get("/clients/:uuid", controllers.HandleGetClient)
	v1.Put("/clients/:uuid", controllers.HandleUpdateClient)

	v1.Get("/clients/:uuid/facilities", controllers.HandleListFacilities)
	v1.Post("/clients/:uuid/facilities", controllers.HandleCreateFacility)
	v1.Put("/facilities/:uuid", controllers.HandleUpdateFacility)
	v1.Post("/facilities/:uuid/status", controllers.HandleSetFacilityStatus)

	v1.Post("/facilities/:uuid/overrides", controllers.HandleCreateOverride)
	v1.Put("/facilities/:uuid/overrides/:year/:month", controllers.HandleUpdateOverride)
	v1.Delete("/facilities/:uuid/overrides/:year/:month", controllers.HandleDeleteOverride)

	v1.Get("/clients/:uuid/billing/preview", controllers.HandleBillingPreview)
	v1.Get("/clients/:uuid/billing/delta", controllers.HandleBillingDelta)
	v1.Get("/clients/:uuid/schedule", controllers.HandleWeekSchedule)

	v1.Get("/stats", controllers.HandleDashboardStats)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
