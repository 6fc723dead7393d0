package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/janmarg/CivicPortal/app/controllers"
	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/complaints"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
	"github.com/janmarg/CivicPortal/internal/pkg/constants"
	"github.com/janmarg/CivicPortal/internal/pkg/env"
	"github.com/janmarg/CivicPortal/internal/pkg/middleware"
	"github.com/janmarg/CivicPortal/internal/pkg/session"
)

type HttpRouter struct {
	cfg *config.Config
	svc *complaints.Service
}

func NewHttpRouter(cfg *config.Config, svc *complaints.Service) *HttpRouter {
	return &HttpRouter{cfg: cfg, svc: svc}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore(h.cfg.Cache)

	// Apply IdentityMiddleware globally as first middleware so every
	// handler can read the resolved identity from locals.
	app.Use(middleware.IdentityMiddleware)

	repos := repository.GetGlobalRepositories()
	controllers.InitializeAuthController(repos.Citizen, h.cfg.HCaptcha)
	controllers.InitializeOfficerController(repos.Officer)
	controllers.InitializeComplaintController(h.svc, repos.Citizen, h.cfg.Upload.Dir)

	h.registerPortalRoutes(app)
}

// registerPortalRoutes registers the HTML routes. All of them live behind
// CSRF protection; the JSON API under /api is excluded and handled by the
// ApiRouter.
func (h HttpRouter) registerPortalRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	group.Get(constants.RouteHome, controllers.HandleHome)

	// citizen account
	group.Get(constants.RouteRegister, controllers.HandleRegister)
	group.Post(constants.RouteRegister, controllers.HandleRegister)
	group.Get(constants.RouteLogin, controllers.HandleLogin)
	group.Post(constants.RouteLogin, controllers.HandleLogin)
	group.Post(constants.RouteLogout, controllers.HandleLogout)

	// citizen portal
	group.Get(constants.RouteCitizenDashboard, middleware.RequireCitizen, controllers.HandleCitizenDashboard)
	group.Get(constants.RouteComplaint, middleware.RequireCitizen, controllers.HandleComplaint)
	group.Post(constants.RouteComplaint, middleware.RequireCitizen, controllers.HandleComplaint)
	group.Get(constants.RouteComplaintStatus, middleware.RequireCitizen, controllers.HandleComplaintStatus)
	group.Post(constants.RouteComplaintStatus, middleware.RequireCitizen, controllers.HandleComplaintStatus)

	// officer portal
	group.Get(constants.RouteOfficerLogin, controllers.HandleOfficerLogin)
	group.Post(constants.RouteOfficerLogin, controllers.HandleOfficerLogin)
	group.Post(constants.RouteOfficerLogout, controllers.HandleOfficerLogout)
	group.Get(constants.RouteOfficerDashboard, middleware.RequireOfficer, controllers.HandleOfficerDashboard)
	group.Get(constants.RouteOfficerComplaints, middleware.RequireOfficer, controllers.HandleOfficerComplaints)
	group.Post(constants.RouteSolve, middleware.RequireOfficer, controllers.HandleSolveComplaint)
}
