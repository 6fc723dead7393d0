package controllers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/aadhar"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
	"github.com/janmarg/CivicPortal/internal/pkg/constants"
	"github.com/janmarg/CivicPortal/internal/pkg/hcaptcha"
	"github.com/janmarg/CivicPortal/internal/pkg/identity"
	"github.com/janmarg/CivicPortal/internal/pkg/session"
	"github.com/janmarg/CivicPortal/internal/pkg/statistics"
)

var contactPattern = regexp.MustCompile(`^\d{10}$`)

var (
	authCitizens repository.CitizenRepository
	authHCaptcha config.HCaptchaConfig
)

// InitializeAuthController wires the citizen auth handlers with their
// collaborators.
func InitializeAuthController(citizens repository.CitizenRepository, hc config.HCaptchaConfig) {
	authCitizens = citizens
	authHCaptcha = hc
}

// HandleRegister serves the citizen registration form and processes
// submissions.
func HandleRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return handleRegisterSubmit(c)
	}

	return c.Render("register", fiber.Map{
		"Title":           "Register",
		"Flash":           flash.Get(c),
		"Identity":        identity.Get(c),
		"CSRFToken":       csrfToken(c),
		"HCaptchaSiteKey": authHCaptcha.SiteKey,
	}, "layouts/main")
}

func handleRegisterSubmit(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	contact := strings.TrimSpace(c.FormValue("contact"))
	aadharNumber := strings.TrimSpace(c.FormValue("aadhar_number"))
	address := strings.TrimSpace(c.FormValue("address"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	if name == "" || contact == "" || aadharNumber == "" || address == "" || email == "" || password == "" {
		fm := fiber.Map{"type": "error", "message": "Please fill all the fields."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}

	// contact must be 10 digits
	if !contactPattern.MatchString(contact) {
		fm := fiber.Map{"type": "error", "message": "Contact must be exactly 10 digits."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}

	if !aadhar.IsValid(aadharNumber) {
		fm := fiber.Map{"type": "error", "message": "Aadhar must be exactly 12 digits."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}

	if authHCaptcha.Enabled() {
		valid, err := hcaptcha.Verify(authHCaptcha.Secret, c.FormValue("h-captcha-response"))
		if err != nil || !valid {
			fm := fiber.Map{"type": "error", "message": "Captcha validation failed. Please try again."}
			return flash.WithError(c, fm).Redirect(constants.RouteRegister)
		}
	}

	// uniqueness pre-checks; the unique indexes remain the backstop
	if taken, err := authCitizens.EmailExists(email); err == nil && taken {
		fm := fiber.Map{"type": "error", "message": "Email already registered."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}
	if taken, err := authCitizens.AadharExists(aadharNumber); err == nil && taken {
		fm := fiber.Map{"type": "error", "message": "Aadhar already registered."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}
	if taken, err := authCitizens.ContactExists(contact); err == nil && taken {
		fm := fiber.Map{"type": "error", "message": "Contact number already registered."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}

	citizen, err := models.NewCitizen(name, contact, aadharNumber, address, email, password)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}

	if err := authCitizens.Create(citizen); err != nil {
		fm := fiber.Map{"type": "error", "message": "Registration failed: email, Aadhar or contact already in use."}
		return flash.WithError(c, fm).Redirect(constants.RouteRegister)
	}

	go statistics.UpdateStatisticsCache()

	fm := fiber.Map{"type": "success", "message": "Registration successful. Please log in."}
	return flash.WithSuccess(c, fm).Redirect(constants.RouteLogin)
}

// HandleLogin serves the citizen login form and processes submissions.
func HandleLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return handleLoginSubmit(c)
	}

	return c.Render("login", fiber.Map{
		"Title":     "Citizen Login",
		"Flash":     flash.Get(c),
		"Identity":  identity.Get(c),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

func handleLoginSubmit(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	if email == "" || password == "" {
		fm := fiber.Map{"type": "error", "message": "Both fields required."}
		return flash.WithError(c, fm).Redirect(constants.RouteLogin)
	}

	citizen, err := authCitizens.GetByEmail(email)
	if err != nil || !citizen.CheckPassword(password) {
		fm := fiber.Map{"type": "error", "message": "Invalid credentials."}
		return flash.WithError(c, fm).Redirect(constants.RouteLogin)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteLogin)
	}

	// a session holds at most one role at a time
	sess.Delete(identity.KeyOfficerID)
	sess.Delete(identity.KeyOfficerName)

	sess.Set(identity.KeyCitizenID, citizen.ID)
	sess.Set(identity.KeyCitizenName, citizen.Name)
	sess.Set(identity.KeyCitizenAadhar, citizen.AadharNumber)

	if err := sess.Save(); err != nil {
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteLogin)
	}

	fm := fiber.Map{"type": "success", "message": fmt.Sprintf("Welcome, %s!", citizen.Name)}
	return flash.WithSuccess(c, fm).Redirect(constants.RouteCitizenDashboard)
}

// HandleLogout clears the whole session, whichever role was active.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
			return flash.WithError(c, fm).Redirect(constants.RouteHome)
		}
	}

	fm := fiber.Map{"type": "success", "message": "Logged out."}
	return flash.WithSuccess(c, fm).Redirect(constants.RouteHome)
}

// HandleCitizenDashboard shows the logged-in citizen their own complaints.
func HandleCitizenDashboard(c *fiber.Ctx) error {
	id := identity.Get(c)

	complaints, err := lifecycleService.ListForCitizen(id.AadharNumber)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Could not load your complaints."}
		return flash.WithError(c, fm).Redirect(constants.RouteHome)
	}

	return c.Render("citizen_dashboard", fiber.Map{
		"Title":      "Citizen Dashboard",
		"Flash":      flash.Get(c),
		"Identity":   id,
		"Complaints": complaints,
		"Stats":      statistics.GetStatisticsData(),
		"CSRFToken":  csrfToken(c),
	}, "layouts/main")
}

func csrfToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("csrf").(string); ok {
		return v
	}
	return ""
}
