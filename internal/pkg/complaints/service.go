package complaints

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/complaintno"
	"github.com/janmarg/CivicPortal/internal/pkg/mail"
)

// ErrNotFound is returned when no complaint matches the given identifiers.
var ErrNotFound = errors.New("complaint not found")

// ValidationError reports a missing mandatory field. Nothing is persisted
// when it is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mandatory field %q is missing", e.Field)
}

// NotifyError wraps a post-commit mail failure. The data mutation it follows
// is already committed and is never rolled back; callers surface the failure
// as a warning only.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notification email failed: %v", e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}

// Mailer is the outbound notification collaborator.
type Mailer interface {
	Send(to string, subject string, body string) error
}

// Service implements the complaint lifecycle: filing, officer listing,
// resolution and citizen status lookup.
type Service struct {
	complaints repository.ComplaintRepository
	citizens   repository.CitizenRepository
	mailer     Mailer
}

// NewService creates a lifecycle service from injected repositories and mailer.
func NewService(complaints repository.ComplaintRepository, citizens repository.CitizenRepository, mailer Mailer) *Service {
	return &Service{complaints: complaints, citizens: citizens, mailer: mailer}
}

// createAttempts bounds retries when the unique index on complaint_no rejects
// an insert that raced another filing past the pre-check.
const createAttempts = 5

// FileInput carries the complaint form fields plus the stored filenames of
// any uploaded images (already written to the upload directory).
type FileInput struct {
	Title          string
	Location       string
	Category       string
	Subcategory    string
	SubSubcategory string
	Priority       string
	AffectedPeople string
	Description    string
	ImageNames     []string
}

// File persists a new pending complaint for the citizen and then sends the
// confirmation email best-effort. When only the email fails, the complaint is
// returned together with a *NotifyError.
func (s *Service) File(citizen *models.Citizen, in FileInput) (*models.Complaint, error) {
	title := strings.TrimSpace(in.Title)
	location := strings.TrimSpace(in.Location)
	category := strings.TrimSpace(in.Category)
	description := strings.TrimSpace(in.Description)

	if title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if location == "" {
		return nil, &ValidationError{Field: "location"}
	}
	if category == "" {
		return nil, &ValidationError{Field: "category"}
	}
	if description == "" {
		return nil, &ValidationError{Field: "description"}
	}

	affected := strings.TrimSpace(in.AffectedPeople)
	if affected == "" {
		affected = models.DefaultAffectedPeople
	}

	complaint := &models.Complaint{
		Title:          title,
		Location:       location,
		Category:       category,
		Subcategory:    strings.TrimSpace(in.Subcategory),
		SubSubcategory: strings.TrimSpace(in.SubSubcategory),
		Priority:       models.ParsePriority(strings.TrimSpace(in.Priority)),
		AffectedPeople: affected,
		Description:    description,
		CitizenAadhar:  citizen.AadharNumber,
		Status:         models.StatusPending,
	}

	if err := s.createWithFreshNumber(complaint); err != nil {
		return nil, err
	}

	for _, name := range in.ImageNames {
		img := &models.ComplaintImage{ComplaintID: complaint.ID, ImagePath: name}
		if err := s.complaints.CreateImage(img); err != nil {
			// The complaint itself is saved; a failed image row must not
			// undo it, but the caller should know.
			return complaint, fmt.Errorf("complaint %s saved, but storing an image record failed: %w", complaint.ComplaintNo, err)
		}
	}

	body := mail.ComplaintRegisteredBody(citizen.Name, complaint)
	if err := s.mailer.Send(citizen.Email, mail.ComplaintRegisteredSubject, body); err != nil {
		return complaint, &NotifyError{Err: err}
	}

	return complaint, nil
}

// createWithFreshNumber assigns a generated complaint number and inserts the
// row, retrying with a new number if the unique index reports a collision.
func (s *Service) createWithFreshNumber(complaint *models.Complaint) error {
	for attempt := 0; attempt < createAttempts; attempt++ {
		no, err := complaintno.Generate(s.complaints.ComplaintNoExists)
		if err != nil {
			return err
		}
		complaint.ComplaintNo = no

		err = s.complaints.Create(complaint)
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return err
	}
	return fmt.Errorf("could not assign a unique complaint number after %d attempts", createAttempts)
}

// ListForOfficer returns every complaint joined to its filing citizen,
// most recent first.
func (s *Service) ListForOfficer() ([]repository.ComplaintWithCitizen, error) {
	return s.complaints.ListWithCitizens()
}

// ListForCitizen returns the complaints filed under the given Aadhar number,
// most recent first.
func (s *Service) ListForCitizen(aadharNumber string) ([]models.Complaint, error) {
	return s.complaints.ListByAadhar(aadharNumber)
}

// ResolveResult reports the outcome of a resolution attempt.
type ResolveResult struct {
	Complaint *models.Complaint
	// AlreadySolved is set when the complaint was solved before this call;
	// the operation is an informational no-op then.
	AlreadySolved bool
	// NotifyErr records a failed resolution email. The status change is
	// already committed when it is set.
	NotifyErr error
}

// Resolve transitions a pending complaint to Solved and then notifies the
// filing citizen best-effort. Resolving an already-solved complaint is
// idempotent and sends no mail.
func (s *Service) Resolve(complaintNo string) (*ResolveResult, error) {
	complaint, err := s.complaints.GetByComplaintNo(strings.TrimSpace(complaintNo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if complaint.IsSolved() {
		return &ResolveResult{Complaint: complaint, AlreadySolved: true}, nil
	}

	if err := s.complaints.UpdateStatus(complaint.ID, models.StatusSolved); err != nil {
		return nil, err
	}
	complaint.Status = models.StatusSolved

	result := &ResolveResult{Complaint: complaint}

	citizen, err := s.citizens.GetByAadhar(complaint.CitizenAadhar)
	if err != nil {
		// No matching citizen record: nothing to notify.
		return result, nil
	}

	body := mail.ComplaintResolvedBody(citizen.Name, complaint)
	if err := s.mailer.Send(citizen.Email, mail.ComplaintResolvedSubject, body); err != nil {
		result.NotifyErr = &NotifyError{Err: err}
	}

	return result, nil
}

// Lookup returns the single complaint matching the Aadhar number and
// complaint number pair. The pair is taken as submitted; the complaint number
// acts as a shared secret alongside the Aadhar number.
func (s *Service) Lookup(aadharNumber, complaintNo string) (*models.Complaint, error) {
	aadharNumber = strings.TrimSpace(aadharNumber)
	complaintNo = strings.TrimSpace(complaintNo)

	if aadharNumber == "" {
		return nil, &ValidationError{Field: "aadhar_no"}
	}
	if complaintNo == "" {
		return nil, &ValidationError{Field: "complaint_no"}
	}

	complaint, err := s.complaints.GetByComplaintNoAndAadhar(complaintNo, aadharNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return complaint, nil
}
