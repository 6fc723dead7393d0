package repository

import (
	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
)

// officerRepository implements the OfficerRepository interface
type officerRepository struct {
	db *gorm.DB
}

// NewOfficerRepository creates a new officer repository instance
func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &officerRepository{db: db}
}

// Create creates a new officer in the database
func (r *officerRepository) Create(officer *models.Officer) error {
	return r.db.Create(officer).Error
}

// GetByID retrieves an officer by their ID
func (r *officerRepository) GetByID(id uint) (*models.Officer, error) {
	var officer models.Officer
	err := r.db.First(&officer, id).Error
	if err != nil {
		return nil, err
	}
	return &officer, nil
}

// GetByEmail retrieves an officer by their email address
func (r *officerRepository) GetByEmail(email string) (*models.Officer, error) {
	var officer models.Officer
	err := r.db.Where("email = ?", email).First(&officer).Error
	if err != nil {
		return nil, err
	}
	return &officer, nil
}
