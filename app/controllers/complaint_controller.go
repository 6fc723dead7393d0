package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/complaints"
	"github.com/janmarg/CivicPortal/internal/pkg/constants"
	"github.com/janmarg/CivicPortal/internal/pkg/identity"
	"github.com/janmarg/CivicPortal/internal/pkg/statistics"
	"github.com/janmarg/CivicPortal/internal/pkg/upload"
)

var (
	lifecycleService *complaints.Service
	citizenRepo      repository.CitizenRepository
	uploadDir        string
)

// InitializeComplaintController wires the complaint handlers with the
// lifecycle service and the upload directory.
func InitializeComplaintController(svc *complaints.Service, citizens repository.CitizenRepository, dir string) {
	lifecycleService = svc
	citizenRepo = citizens
	uploadDir = dir
}

// HandleComplaint serves the complaint form and processes filings.
func HandleComplaint(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return handleComplaintSubmit(c)
	}

	return c.Render("complaint", fiber.Map{
		"Title":     "File a Complaint",
		"Flash":     flash.Get(c),
		"Identity":  identity.Get(c),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

func handleComplaintSubmit(c *fiber.Ctx) error {
	id := identity.Get(c)

	citizen, err := citizenRepo.GetByID(id.CitizenID)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Please log in first."}
		return flash.WithError(c, fm).Redirect(constants.RouteLogin)
	}

	files := formImages(c)
	stored, err := validateImages(files)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect(constants.RouteComplaint)
	}

	in := complaints.FileInput{
		Title:          c.FormValue("title"),
		Location:       c.FormValue("location"),
		Category:       c.FormValue("category"),
		Subcategory:    c.FormValue("subcategory"),
		SubSubcategory: c.FormValue("sub_subcategory"),
		Priority:       c.FormValue("priority"),
		AffectedPeople: c.FormValue("affected_people"),
		Description:    c.FormValue("description"),
		ImageNames:     storedNames(stored),
	}

	complaint, err := lifecycleService.File(citizen, in)

	var verr *complaints.ValidationError
	if errors.As(err, &verr) {
		fm := fiber.Map{"type": "error", "message": "Please fill all mandatory fields."}
		return flash.WithError(c, fm).Redirect(constants.RouteComplaint)
	}

	var nerr *complaints.NotifyError
	mailFailed := errors.As(err, &nerr)
	if err != nil && !mailFailed {
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteComplaint)
	}

	// The complaint is committed; write the uploaded files to disk.
	for _, s := range stored {
		if err := c.SaveFile(s.file, filepath.Join(uploadDir, s.name)); err != nil {
			fiberlog.Errorf("Failed to store complaint image %s: %v", s.name, err)
		}
	}

	go statistics.UpdateStatisticsCache()

	if mailFailed {
		fiberlog.Errorf("Failed to send complaint e-mail: %v", nerr)
		fm := fiber.Map{"type": "warning", "message": fmt.Sprintf("Complaint saved (No: %s), but e-mail failed (see logs).", complaint.ComplaintNo)}
		return flash.WithWarn(c, fm).Redirect(constants.RouteCitizenDashboard)
	}

	fm := fiber.Map{"type": "success", "message": fmt.Sprintf("Complaint submitted successfully. Complaint No: %s", complaint.ComplaintNo)}
	return flash.WithSuccess(c, fm).Redirect(constants.RouteCitizenDashboard)
}

type storedImage struct {
	file *multipart.FileHeader
	name string
}

func storedNames(stored []storedImage) []string {
	names := make([]string, 0, len(stored))
	for _, s := range stored {
		names = append(names, s.name)
	}
	return names
}

// formImages returns the uploaded files, or nothing when the form carries no
// multipart part (images are optional).
func formImages(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// validateImages sniff-checks every uploaded file and assigns each a
// collision-resistant stored name. Filing is rejected as a whole when any
// file is not an acceptable image.
func validateImages(files []*multipart.FileHeader) ([]storedImage, error) {
	stored := make([]storedImage, 0, len(files))
	for _, file := range files {
		if file == nil || file.Filename == "" || file.Size == 0 {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("could not read uploaded file %s", file.Filename)
		}
		head := make([]byte, 512)
		n, _ := src.Read(head)
		src.Close()

		if _, err := upload.ValidateImageBySniff(file.Filename, head[:n]); err != nil {
			return nil, err
		}

		stored = append(stored, storedImage{file: file, name: upload.StoredName(file.Filename)})
	}
	return stored, nil
}

// HandleComplaintStatus serves the status lookup form and processes lookups.
func HandleComplaintStatus(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":     "Complaint Status",
		"Flash":     flash.Get(c),
		"Identity":  identity.Get(c),
		"CSRFToken": csrfToken(c),
	}

	if c.Method() != fiber.MethodPost {
		return c.Render("complaint_status", data, "layouts/main")
	}

	aadharNo := c.FormValue("aadhar_no")
	complaintNo := c.FormValue("complaint_no")

	complaint, err := lifecycleService.Lookup(aadharNo, complaintNo)
	if err != nil {
		var verr *complaints.ValidationError
		if errors.As(err, &verr) {
			fm := fiber.Map{"type": "error", "message": "Both fields are required."}
			return flash.WithError(c, fm).Redirect(constants.RouteComplaintStatus)
		}
		if errors.Is(err, complaints.ErrNotFound) {
			fm := fiber.Map{"type": "error", "message": "Complaint not found."}
			return flash.WithError(c, fm).Redirect(constants.RouteComplaintStatus)
		}
		fm := fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}
		return flash.WithError(c, fm).Redirect(constants.RouteComplaintStatus)
	}

	data["Complaint"] = complaint
	return c.Render("complaint_status", data, "layouts/main")
}
