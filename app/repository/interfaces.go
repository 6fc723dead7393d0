package repository

import (
	"time"

	"github.com/janmarg/CivicPortal/app/models"
)

// CitizenRepository defines the interface for citizen-related database operations
type CitizenRepository interface {
	Create(citizen *models.Citizen) error
	GetByID(id uint) (*models.Citizen, error)
	GetByEmail(email string) (*models.Citizen, error)
	GetByAadhar(aadharNumber string) (*models.Citizen, error)
	EmailExists(email string) (bool, error)
	AadharExists(aadharNumber string) (bool, error)
	ContactExists(contact string) (bool, error)
	Count() (int64, error)
}

// OfficerRepository defines the interface for officer-related database operations
type OfficerRepository interface {
	Create(officer *models.Officer) error
	GetByID(id uint) (*models.Officer, error)
	GetByEmail(email string) (*models.Officer, error)
}

// ComplaintWithCitizen is one row of the officer listing: a complaint joined
// to its filing citizen by Aadhar-number equality.
type ComplaintWithCitizen struct {
	ComplaintNo    string            `json:"complaint_no"`
	Title          string            `json:"title"`
	Location       string            `json:"location"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory"`
	SubSubcategory string            `json:"sub_subcategory"`
	Priority       models.Priority   `json:"priority"`
	AffectedPeople string            `json:"affected_people"`
	Description    string            `json:"description"`
	Status         models.Status     `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	CitizenName    string            `json:"citizen_name"`
	CitizenAadhar  string            `json:"-"`
}

// ComplaintRepository defines the interface for complaint-related database operations
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	CreateImage(image *models.ComplaintImage) error
	GetByComplaintNo(no string) (*models.Complaint, error)
	GetByComplaintNoAndAadhar(no, aadharNumber string) (*models.Complaint, error)
	ComplaintNoExists(no string) (bool, error)
	UpdateStatus(id uint, status models.Status) error
	ListWithCitizens() ([]ComplaintWithCitizen, error)
	ListByAadhar(aadharNumber string) ([]models.Complaint, error)
	Count() (int64, error)
	CountByStatus(status models.Status) (int64, error)
}
