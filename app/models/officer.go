package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Officer accounts are provisioned out of band (cmd/createofficer); there is
// no self-registration flow.
type Officer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=2,max=200"`
	Email     string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,email,min=5,max=200"`
	Password  string    `gorm:"type:text;not null" json:"-" validate:"required,min=6"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (o *Officer) Validate() error {
	v := validator.New()

	return v.Struct(o)
}

// NewOfficer builds an officer with a bcrypt-hashed password.
func NewOfficer(name, email, password string) (*Officer, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	o := &Officer{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: pw,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// CheckPassword verifies if the provided password matches the officer's stored password
func (o *Officer) CheckPassword(password string) bool {
	return CheckPasswordHash(password, o.Password)
}
