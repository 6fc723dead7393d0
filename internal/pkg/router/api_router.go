package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/janmarg/CivicPortal/internal/api/v1"
	"github.com/janmarg/CivicPortal/internal/pkg/complaints"
	"github.com/janmarg/CivicPortal/internal/pkg/middleware"
)

type ApiRouter struct {
	svc *complaints.Service
}

func NewApiRouter(svc *complaints.Service) *ApiRouter {
	return &ApiRouter{svc: svc}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	srv := apiv1.NewAPIServer(h.svc)
	v1.Get("/ping", srv.GetPing)
	v1.Get("/complaints", middleware.RequireOfficerAPI, srv.GetComplaints)
	v1.Get("/complaints/:complaint_no", middleware.RequireCitizenAPI, srv.GetComplaintStatus)
}
