package mail

import (
	"strings"
	"testing"

	"github.com/janmarg/CivicPortal/app/models"
)

func TestComplaintRegisteredBody(t *testing.T) {
	c := &models.Complaint{
		ComplaintNo: "654321",
		Title:       "Overflowing drain",
		Category:    "Sanitation",
		Priority:    models.PriorityUrgent,
		Location:    "Sector 4",
		Description: "Drain overflowing since Monday.",
	}

	body := ComplaintRegisteredBody("Asha Rao", c)

	for _, want := range []string{"Dear Asha Rao", "654321", "Overflowing drain", "Sanitation > - > -", "Urgent"} {
		if !strings.Contains(body, want) {
			t.Fatalf("registered body missing %q:\n%s", want, body)
		}
	}
}

func TestComplaintResolvedBody(t *testing.T) {
	c := &models.Complaint{
		ComplaintNo: "654321",
		Category:    "Sanitation",
		Description: "Drain overflowing since Monday.",
	}

	body := ComplaintResolvedBody("Asha Rao", c)

	for _, want := range []string{"Dear Asha Rao", "654321", "marked as Solved"} {
		if !strings.Contains(body, want) {
			t.Fatalf("resolved body missing %q:\n%s", want, body)
		}
	}
}
