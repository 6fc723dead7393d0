package apiv1

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/janmarg/CivicPortal/internal/pkg/complaints"
)

// APIServer serves the small JSON API next to the HTML portal.
type APIServer struct {
	svc *complaints.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc *complaints.Service) *APIServer {
	return &APIServer{svc: svc}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// GetComplaints returns every complaint joined with its filing citizen,
// most recent first. Officer session required (enforced in the router).
func (s *APIServer) GetComplaints(c *fiber.Ctx) error {
	rows, err := s.svc.ListForOfficer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "could not load complaints",
		})
	}
	return c.JSON(fiber.Map{"complaints": rows})
}

// GetComplaintStatus returns the status of a single complaint identified by
// complaint number plus the filing Aadhar number. Citizen session required
// (enforced in the router).
func (s *APIServer) GetComplaintStatus(c *fiber.Ctx) error {
	complaintNo := c.Params("complaint_no")
	aadharNo := c.Query("aadhar_no")

	complaint, err := s.svc.Lookup(aadharNo, complaintNo)
	if err != nil {
		var verr *complaints.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "bad_request",
				"message": verr.Error(),
			})
		}
		if errors.Is(err, complaints.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "complaint not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "lookup failed",
		})
	}

	return c.JSON(fiber.Map{
		"complaint_no": complaint.ComplaintNo,
		"title":        complaint.Title,
		"category":     complaint.Category,
		"priority":     complaint.Priority,
		"status":       complaint.Status,
		"created_at":   complaint.CreatedAt,
	})
}
