package mail

import (
	"fmt"

	"github.com/janmarg/CivicPortal/app/models"
)

const (
	ComplaintRegisteredSubject = "City Complaint Registered"
	ComplaintResolvedSubject   = "Your City Complaint has been Resolved"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// ComplaintRegisteredBody renders the confirmation mail sent after a
// complaint is filed.
func ComplaintRegisteredBody(citizenName string, c *models.Complaint) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your complaint has been registered successfully in the City Complaint Portal.\n\n"+
			"Complaint No : %s\n"+
			"Title        : %s\n"+
			"Category     : %s > %s > %s\n"+
			"Priority     : %s\n"+
			"Affected     : %s\n"+
			"Location     : %s\n"+
			"Description  : %s\n\n"+
			"We will notify you when the status changes.\n\n"+
			"Regards,\nCity Complaint Portal",
		citizenName,
		c.ComplaintNo,
		c.Title,
		c.Category, orDash(c.Subcategory), orDash(c.SubSubcategory),
		c.Priority,
		orNotSpecified(c.AffectedPeople),
		orNotSpecified(c.Location),
		c.Description,
	)
}

// ComplaintResolvedBody renders the mail sent when an officer marks a
// complaint solved.
func ComplaintResolvedBody(citizenName string, c *models.Complaint) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your complaint has been marked as Solved.\n\n"+
			"Complaint No : %s\n"+
			"Category     : %s\n"+
			"Description  : %s\n\n"+
			"If the issue still persists, please file a new complaint.\n\n"+
			"Regards,\nCity Complaint Portal",
		citizenName,
		c.ComplaintNo,
		c.Category,
		c.Description,
	)
}
