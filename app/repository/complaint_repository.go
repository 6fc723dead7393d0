package repository

import (
	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
)

// complaintRepository implements the ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository instance
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint in the database. The unique index on
// complaint_no is the authoritative uniqueness guard; callers retry on
// gorm.ErrDuplicatedKey.
func (r *complaintRepository) Create(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// CreateImage persists one uploaded image row for a complaint
func (r *complaintRepository) CreateImage(image *models.ComplaintImage) error {
	return r.db.Create(image).Error
}

// GetByComplaintNo retrieves a complaint by its 6-digit public number
func (r *complaintRepository) GetByComplaintNo(no string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.Where("complaint_no = ?", no).First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetByComplaintNoAndAadhar retrieves the complaint matching both the public
// number and the filing citizen's Aadhar number, with its images.
func (r *complaintRepository) GetByComplaintNoAndAadhar(no, aadharNumber string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.Preload("Images").Where("complaint_no = ? AND citizen_aadhar = ?", no, aadharNumber).First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ComplaintNoExists(no string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Where("complaint_no = ?", no).Count(&count).Error
	return count > 0, err
}

// UpdateStatus sets the status of a complaint by database id
func (r *complaintRepository) UpdateStatus(id uint, status models.Status) error {
	return r.db.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status).Error
}

// ListWithCitizens returns all complaints joined to their filing citizen by
// Aadhar equality, most recent first.
func (r *complaintRepository) ListWithCitizens() ([]ComplaintWithCitizen, error) {
	var rows []ComplaintWithCitizen
	err := r.db.Model(&models.Complaint{}).
		Select("complaints.complaint_no, complaints.title, complaints.location, complaints.category, complaints.subcategory, complaints.sub_subcategory, complaints.priority, complaints.affected_people, complaints.description, complaints.status, complaints.created_at, citizens.name AS citizen_name, citizens.aadhar_number AS citizen_aadhar").
		Joins("JOIN citizens ON citizens.aadhar_number = complaints.citizen_aadhar").
		Order("complaints.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByAadhar returns all complaints filed under an Aadhar number, most recent first
func (r *complaintRepository) ListByAadhar(aadharNumber string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Where("citizen_aadhar = ?", aadharNumber).Order("created_at DESC").Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// Count returns the total number of complaints
func (r *complaintRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of complaints with the given status
func (r *complaintRepository) CountByStatus(status models.Status) (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
