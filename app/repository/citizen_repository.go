package repository

import (
	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
)

// citizenRepository implements the CitizenRepository interface
type citizenRepository struct {
	db *gorm.DB
}

// NewCitizenRepository creates a new citizen repository instance
func NewCitizenRepository(db *gorm.DB) CitizenRepository {
	return &citizenRepository{db: db}
}

// Create creates a new citizen in the database
func (r *citizenRepository) Create(citizen *models.Citizen) error {
	return r.db.Create(citizen).Error
}

// GetByID retrieves a citizen by their ID
func (r *citizenRepository) GetByID(id uint) (*models.Citizen, error) {
	var citizen models.Citizen
	err := r.db.First(&citizen, id).Error
	if err != nil {
		return nil, err
	}
	return &citizen, nil
}

// GetByEmail retrieves a citizen by their email address
func (r *citizenRepository) GetByEmail(email string) (*models.Citizen, error) {
	var citizen models.Citizen
	err := r.db.Where("email = ?", email).First(&citizen).Error
	if err != nil {
		return nil, err
	}
	return &citizen, nil
}

// GetByAadhar retrieves a citizen by their Aadhar number
func (r *citizenRepository) GetByAadhar(aadharNumber string) (*models.Citizen, error) {
	var citizen models.Citizen
	err := r.db.Where("aadhar_number = ?", aadharNumber).First(&citizen).Error
	if err != nil {
		return nil, err
	}
	return &citizen, nil
}

func (r *citizenRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Citizen{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *citizenRepository) AadharExists(aadharNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Citizen{}).Where("aadhar_number = ?", aadharNumber).Count(&count).Error
	return count > 0, err
}

func (r *citizenRepository) ContactExists(contact string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Citizen{}).Where("contact = ?", contact).Count(&count).Error
	return count > 0, err
}

// Count returns the number of registered citizens
func (r *citizenRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Citizen{}).Count(&count).Error
	return count, err
}
