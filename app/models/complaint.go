package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Priority is a closed set; anything else collapses to PriorityNormal at the
// parse boundary so an invalid value is never stored.
type Priority string

const (
	PriorityNormal   Priority = "Normal"
	PriorityUrgent   Priority = "Urgent"
	PriorityCritical Priority = "Critical"
)

// ParsePriority maps form input to a Priority, falling back to Normal for
// unknown values. The fallback is a silent correction, not an error.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityUrgent:
		return PriorityUrgent
	case PriorityCritical:
		return PriorityCritical
	default:
		return PriorityNormal
	}
}

// Status only ever moves Pending -> Solved; there is no reversal.
type Status string

const (
	StatusPending Status = "Pending"
	StatusSolved  Status = "Solved"
)

const DefaultAffectedPeople = "Just Me"

type Complaint struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// ComplaintNo is the 6-digit public identifier. It is globally unique
	// and immutable once assigned.
	ComplaintNo string `gorm:"type:varchar(6);uniqueIndex;not null" json:"complaint_no" validate:"required,len=6"`

	Title    string `gorm:"type:varchar(200);not null" json:"title" validate:"required,max=200"`
	Location string `gorm:"type:varchar(300);not null" json:"location" validate:"required,max=300"`

	Category       string `gorm:"type:varchar(100);not null" json:"category" validate:"required,max=100"`
	Subcategory    string `gorm:"type:varchar(100)" json:"subcategory" validate:"max=100"`
	SubSubcategory string `gorm:"type:varchar(100)" json:"sub_subcategory" validate:"max=100"`

	Priority       Priority `gorm:"type:varchar(20);default:'Normal';not null" json:"priority" validate:"oneof=Normal Urgent Critical"`
	AffectedPeople string   `gorm:"type:varchar(50);default:'Just Me';not null" json:"affected_people" validate:"max=50"`

	Description string `gorm:"type:varchar(500);not null" json:"description" validate:"required,max=500"`
	// CitizenAadhar links the complaint to its filer by Aadhar number, not
	// by the citizen's database id; traceability is by the Aadhar string.
	CitizenAadhar string    `gorm:"type:varchar(12);index;not null" json:"-" validate:"required,len=12"`
	Status        Status    `gorm:"type:varchar(50);default:'Pending';not null" json:"status" validate:"oneof=Pending Solved"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Images []ComplaintImage `gorm:"foreignKey:ComplaintID" json:"images,omitempty"`
}

func (c *Complaint) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsSolved reports whether the complaint has already been resolved.
func (c *Complaint) IsSolved() bool {
	return c.Status == StatusSolved
}
