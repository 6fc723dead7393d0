package models

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/janmarg/CivicPortal/internal/pkg/aadhar"
)

var (
	ErrInvalidAadhar  = errors.New("aadhar number must be exactly 12 digits")
	ErrInvalidContact = errors.New("contact number must be exactly 10 digits")
)

type Citizen struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=2,max=200"`
	AadharNumber string    `gorm:"type:varchar(12);uniqueIndex;not null" json:"-" validate:"required,len=12"`
	Contact      string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"-" validate:"required,len=10"`
	Email        string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,email,min=5,max=200"`
	Password     string    `gorm:"type:text;not null" json:"-" validate:"required,min=6"`
	Address      string    `gorm:"type:varchar(500);not null" json:"address" validate:"required,max=500"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Citizen) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// NewCitizen builds a registration-ready citizen: input is trimmed, the email
// lowercased, the password bcrypt-hashed. Aadhar and contact formats are
// checked before the struct-tag validation runs.
func NewCitizen(name, contact, aadharNumber, address, email, password string) (*Citizen, error) {
	contact = strings.TrimSpace(contact)
	aadharNumber = strings.TrimSpace(aadharNumber)

	if !aadhar.IsValid(aadharNumber) {
		return nil, ErrInvalidAadhar
	}
	if !isDigits(contact) || len(contact) != 10 {
		return nil, ErrInvalidContact
	}

	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	c := &Citizen{
		Name:         strings.TrimSpace(name),
		AadharNumber: aadharNumber,
		Contact:      contact,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Password:     pw,
		Address:      strings.TrimSpace(address),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// CheckPassword verifies if the provided password matches the citizen's stored password
func (c *Citizen) CheckPassword(password string) bool {
	return CheckPasswordHash(password, c.Password)
}

// MaskedAadhar returns the display form of the citizen's Aadhar number.
func (c *Citizen) MaskedAadhar() string {
	return aadhar.Mask(c.AadharNumber)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
