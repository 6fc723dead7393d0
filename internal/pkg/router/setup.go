package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/complaints"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
	"github.com/janmarg/CivicPortal/internal/pkg/mail"
)

// Router installs a set of routes on a fiber application.
type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, cfg *config.Config) {
	repos := repository.GetGlobalRepositories()
	mailer := mail.NewMailer(cfg.SMTP)
	svc := complaints.NewService(repos.Complaint, repos.Citizen, mailer)

	// Install HttpRouter first to initialize the session store and the
	// global identity middleware. Then register API routes which depend
	// on that middleware (e.g., the role-guard middlewares).
	setup(app, NewHttpRouter(cfg, svc), NewApiRouter(svc))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
