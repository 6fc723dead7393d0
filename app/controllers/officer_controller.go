package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/complaints"
	"github.com/janmarg/CivicPortal/internal/pkg/constants"
	"github.com/janmarg/CivicPortal/internal/pkg/identity"
	"github.com/janmarg/CivicPortal/internal/pkg/session"
	"github.com/janmarg/CivicPortal/internal/pkg/statistics"
)

var officerRepo repository.OfficerRepository

// InitializeOfficerController wires the officer handlers with their
// collaborators.
func InitializeOfficerController(officers repository.OfficerRepository) {
	officerRepo = officers
}

// HandleOfficerLogin serves the officer login form and processes submissions.
func HandleOfficerLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return handleOfficerLoginSubmit(c)
	}

	return c.Render("officer_login", fiber.Map{
		"Title":     "Officer Login",
		"Flash":     flash.Get(c),
		"Identity":  identity.Get(c),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

func handleOfficerLoginSubmit(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	officer, err := officerRepo.GetByEmail(email)
	if err != nil || !officer.CheckPassword(password) {
		fm := fiber.Map{"type": "error", "message": "Invalid credentials."}
		return flash.WithError(c, fm).Redirect(constants.RouteOfficerLogin)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteOfficerLogin)
	}

	// a session holds at most one role at a time
	sess.Delete(identity.KeyCitizenID)
	sess.Delete(identity.KeyCitizenName)
	sess.Delete(identity.KeyCitizenAadhar)

	sess.Set(identity.KeyOfficerID, officer.ID)
	sess.Set(identity.KeyOfficerName, officer.Name)

	if err := sess.Save(); err != nil {
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteOfficerLogin)
	}

	fm := fiber.Map{"type": "success", "message": fmt.Sprintf("Welcome Officer %s!", officer.Name)}
	return flash.WithSuccess(c, fm).Redirect(constants.RouteOfficerDashboard)
}

// HandleOfficerLogout clears the session and returns to the landing page.
func HandleOfficerLogout(c *fiber.Ctx) error {
	return HandleLogout(c)
}

// HandleOfficerDashboard shows the officer the portal counters.
func HandleOfficerDashboard(c *fiber.Ctx) error {
	return c.Render("officer_dashboard", fiber.Map{
		"Title":     "Officer Dashboard",
		"Flash":     flash.Get(c),
		"Identity":  identity.Get(c),
		"Stats":     statistics.GetStatisticsData(),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

// HandleOfficerComplaints lists every complaint joined with its filing
// citizen, most recent first.
func HandleOfficerComplaints(c *fiber.Ctx) error {
	rows, err := lifecycleService.ListForOfficer()
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Could not load complaints."}
		return flash.WithError(c, fm).Redirect(constants.RouteOfficerDashboard)
	}

	return c.Render("complaint_view", fiber.Map{
		"Title":      "All Complaints",
		"Flash":      flash.Get(c),
		"Identity":   identity.Get(c),
		"Complaints": rows,
		"CSRFToken":  csrfToken(c),
	}, "layouts/main")
}

// HandleSolveComplaint marks a complaint solved and notifies the filing
// citizen best-effort.
func HandleSolveComplaint(c *fiber.Ctx) error {
	complaintNo := c.Params("complaint_no")

	result, err := lifecycleService.Resolve(complaintNo)
	if err != nil {
		if errors.Is(err, complaints.ErrNotFound) {
			fm := fiber.Map{"type": "error", "message": "Complaint not found."}
			return flash.WithError(c, fm).Redirect(constants.RouteOfficerComplaints)
		}
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteOfficerComplaints)
	}

	if result.AlreadySolved {
		fm := fiber.Map{"type": "info", "message": fmt.Sprintf("%s is already solved.", result.Complaint.ComplaintNo)}
		return flash.WithInfo(c, fm).Redirect(constants.RouteOfficerComplaints)
	}

	go statistics.UpdateStatisticsCache()

	if result.NotifyErr != nil {
		fm := fiber.Map{"type": "warning", "message": fmt.Sprintf("%s marked as solved, but e-mail failed (see logs).", result.Complaint.ComplaintNo)}
		return flash.WithWarn(c, fm).Redirect(constants.RouteOfficerComplaints)
	}

	fm := fiber.Map{"type": "success", "message": fmt.Sprintf("%s marked as solved.", result.Complaint.ComplaintNo)}
	return flash.WithSuccess(c, fm).Redirect(constants.RouteOfficerComplaints)
}
